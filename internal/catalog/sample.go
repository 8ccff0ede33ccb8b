package catalog

import "assessment-recommender/internal/domain/assessment"

// Sample returns the embedded fallback catalog. It covers every
// assessment type so the engine and the type filters stay exercisable
// without a catalog file.
func Sample() []assessment.Assessment {
	return []assessment.Assessment{
		{
			ID:              "SHL-001",
			Name:            "Verbal Reasoning Assessment",
			Type:            assessment.TypeCognitive,
			Description:     "Measures the ability to understand and evaluate written information",
			Skills:          []string{"Critical thinking", "Language comprehension", "Analytical reasoning"},
			DurationMinutes: 25,
			RemoteAvailable: true,
			AdaptiveSupport: false,
			Link:            "https://www.shl.com/assessments/verbal-reasoning/",
		},
		{
			ID:              "SHL-002",
			Name:            "Numerical Reasoning Assessment",
			Type:            assessment.TypeCognitive,
			Description:     "Evaluates the ability to interpret numerical data and make logical decisions",
			Skills:          []string{"Numerical ability", "Data interpretation", "Problem-solving"},
			DurationMinutes: 35,
			RemoteAvailable: true,
			AdaptiveSupport: true,
			Link:            "https://www.shl.com/assessments/numerical-reasoning/",
		},
		{
			ID:              "SHL-003",
			Name:            "Inductive Reasoning Assessment",
			Type:            assessment.TypeCognitive,
			Description:     "Assesses logical thinking and pattern recognition ability",
			Skills:          []string{"Pattern recognition", "Logical thinking", "Problem-solving"},
			DurationMinutes: 30,
			RemoteAvailable: true,
			AdaptiveSupport: false,
			Link:            "https://www.shl.com/assessments/inductive-reasoning/",
		},
		{
			ID:              "SHL-004",
			Name:            "Mechanical Reasoning Assessment",
			Type:            assessment.TypeTechnical,
			Description:     "Measures understanding of mechanical and physical principles",
			Skills:          []string{"Mechanical aptitude", "Spatial visualization", "Applied physics"},
			DurationMinutes: 20,
			RemoteAvailable: false,
			AdaptiveSupport: false,
			Link:            "https://www.shl.com/assessments/mechanical-reasoning/",
		},
		{
			ID:              "SHL-005",
			Name:            "Coding Assessment for Python",
			Type:            assessment.TypeTechnical,
			Description:     "Evaluates programming skills and problem-solving in Python",
			Skills:          []string{"Python programming", "Algorithms", "Data structures"},
			DurationMinutes: 60,
			RemoteAvailable: true,
			AdaptiveSupport: true,
			Link:            "https://www.shl.com/assessments/coding-python/",
		},
		{
			ID:              "SHL-006",
			Name:            "Leadership Competency Assessment",
			Type:            assessment.TypeBehavioral,
			Description:     "Evaluates leadership potential and management capabilities",
			Skills:          []string{"Leadership", "Decision-making", "Team management"},
			DurationMinutes: 45,
			RemoteAvailable: true,
			AdaptiveSupport: false,
			Link:            "https://www.shl.com/assessments/leadership-competency/",
		},
		{
			ID:              "SHL-007",
			Name:            "Customer Service Assessment",
			Type:            assessment.TypeBehavioral,
			Description:     "Assesses aptitude for customer-facing roles and service orientation",
			Skills:          []string{"Communication", "Empathy", "Problem resolution"},
			DurationMinutes: 30,
			RemoteAvailable: true,
			AdaptiveSupport: false,
			Link:            "https://www.shl.com/assessments/customer-service/",
		},
		{
			ID:              "SHL-008",
			Name:            "Excel Skills Assessment",
			Type:            assessment.TypeTechnical,
			Description:     "Measures proficiency in Microsoft Excel for data analysis and reporting",
			Skills:          []string{"Excel", "Data analysis", "Formula creation"},
			DurationMinutes: 40,
			RemoteAvailable: true,
			AdaptiveSupport: true,
			Link:            "https://www.shl.com/assessments/excel-skills/",
		},
		{
			ID:              "SHL-009",
			Name:            "Personality Assessment",
			Type:            assessment.TypeBehavioral,
			Description:     "Measures work-related personality traits and behavioral tendencies",
			Skills:          []string{"Self-awareness", "Workplace behavior", "Interpersonal style"},
			DurationMinutes: 25,
			RemoteAvailable: true,
			AdaptiveSupport: false,
			Link:            "https://www.shl.com/assessments/personality-profile/",
		},
		{
			ID:              "SHL-010",
			Name:            "Situational Judgement Test",
			Type:            assessment.TypeBehavioral,
			Description:     "Evaluates decision-making in realistic workplace scenarios",
			Skills:          []string{"Decision-making", "Workplace judgment", "Conflict resolution"},
			DurationMinutes: 30,
			RemoteAvailable: true,
			AdaptiveSupport: true,
			Link:            "https://www.shl.com/assessments/situational-judgement/",
		},
		{
			ID:              "SHL-011",
			Name:            "Administrative Professional Assessment",
			Type:            assessment.TypeProfessional,
			Description:     "Measures clerical accuracy, scheduling and office administration skills",
			Skills:          []string{"Data entry", "Scheduling", "Office administration"},
			DurationMinutes: 30,
			RemoteAvailable: true,
			AdaptiveSupport: false,
			Link:            "https://www.shl.com/assessments/administrative-professional/",
		},
		{
			ID:              "SHL-012",
			Name:            "Sales Professional Solution",
			Type:            assessment.TypeProfessional,
			Description:     "Evaluates prospecting, negotiation and customer focus for sales roles",
			Skills:          []string{"Sales ability", "Negotiation", "Customer focus"},
			DurationMinutes: 40,
			RemoteAvailable: true,
			AdaptiveSupport: true,
			Link:            "https://www.shl.com/assessments/sales-professional/",
		},
	}
}
