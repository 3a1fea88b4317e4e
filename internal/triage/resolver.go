package triage

// careRule pairs a predicate over the final label set with the care message
// it selects. Rules are evaluated in order and the first match wins; the
// ordering encodes clinical severity, so an extreme-risk outcome can never
// be masked by a lower-priority match.
type careRule struct {
	name    string
	matches func(LabelSet) bool
	message CardID
}

var careRules = []careRule{
	{
		name:    "not ill",
		matches: func(l LabelSet) bool { return l.Contains(LabelNotIll) },
		message: CareMessageGeneralInfo,
	},
	{
		name:    "extreme severity",
		matches: func(l LabelSet) bool { return l.Contains(LabelExtreme) },
		message: CareMessageCall911,
	},
	{
		name:    "severe plus extreme indicators",
		matches: func(l LabelSet) bool { return l.Contains(LabelSevereExtreme) },
		message: CareMessageCall911OrED,
	},
	{
		name:    "sick infant",
		matches: func(l LabelSet) bool { return l.Contains(LabelInfant) },
		message: CareMessagePediatricCare,
	},
	{
		name:    "severe symptoms",
		matches: func(l LabelSet) bool { return l.Contains(LabelSevere) },
		message: CareMessageEmergencyDept,
	},
	{
		name: "symptom with risk factor",
		matches: func(l LabelSet) bool {
			return l.Contains(LabelShortOfBreath) ||
				(l.Contains(LabelFever) && l.Contains(LabelHealthRisk)) ||
				(l.Contains(LabelCough) && l.Contains(LabelHealthRisk))
		},
		message: CareMessageCallProvider24h,
	},
	{
		name: "symptomatic healthcare worker",
		matches: func(l LabelSet) bool {
			return l.Contains(LabelHCP) && l.Contains(LabelSymptomatic)
		},
		message: CareMessageOccupationalHealth,
	},
	{
		name: "symptomatic long-term care resident",
		matches: func(l LabelSet) bool {
			return l.Contains(LabelLTC) && l.Contains(LabelSymptomatic)
		},
		message: CareMessageFacilityProvider,
	},
	{
		name: "symptomatic",
		matches: func(l LabelSet) bool {
			return !l.Contains(LabelLTC) && !l.Contains(LabelHCP) && l.Contains(LabelSymptomatic)
		},
		message: CareMessageStayHome,
	},
}

// Resolve picks the care message for the final label set, or CareMessageNone
// when no rule matches.
func Resolve(labels LabelSet) CardID {
	for _, rule := range careRules {
		if rule.matches(labels) {
			return rule.message
		}
	}
	return CareMessageNone
}
