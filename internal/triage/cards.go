package triage

import "fmt"

// CardID identifies one guidance card. CM* cards are the mutually-exclusive
// care messages, AC* cards are action steps, HF* cards are condition-specific
// plans and G* cards are general information.
type CardID string

const (
	CareMessageGeneralInfo        CardID = "CMA"
	CareMessageCall911            CardID = "CMB"
	CareMessagePediatricCare      CardID = "CMC"
	CareMessageEmergencyDept      CardID = "CMD"
	CareMessageCallProvider24h    CardID = "CME"
	CareMessageOccupationalHealth CardID = "CMF"
	CareMessageFacilityProvider   CardID = "CMG"
	CareMessageStayHome           CardID = "CMH"
	CareMessageCall911OrED        CardID = "CMI"

	CardStayInRoom     CardID = "AC1"
	CardStayHome       CardID = "AC2"
	CardStaySeparated  CardID = "AC3"
	CardFaceMask       CardID = "AC4"
	CardCoverCoughs    CardID = "AC5"
	CardCleanHands     CardID = "AC6"
	CardDontShareItems CardID = "AC7"
	CardCleanSurfaces  CardID = "AC8"
	CardMonitor        CardID = "AC9"
	CardAvoidSpread    CardID = "AC10"
	CardKnowSymptoms   CardID = "AC11"

	CardDiabetesPlan   CardID = "HF1"
	CardHeartPlan      CardID = "HF2"
	CardLungPlan       CardID = "HF3"
	CardHigherRiskPlan CardID = "HF4"

	CardStayUpToDate CardID = "G1"
	CardStaySafe     CardID = "G2"
)

// CareMessageNone means the label set selected no care message at all.
const CareMessageNone CardID = "NO_CARE_MESSAGE"

// Card is one guidance card: a rich visual template and a spoken template,
// both carrying pronoun placeholders, plus a globally unique importance rank.
type Card struct {
	Rank   int
	Title  string
	Text   string
	Type   string
	Spoken string
}

const cardTypeAccordion = "accordion"

func hyperlink(text, url string) string {
	return fmt.Sprintf(`<a href="%s">%s</a>`, url, text)
}

func sourceHTML(text, url string) string {
	return "<b>Source: </b>" + hyperlink(text, url)
}

// Sources appended to cards.
var (
	cdcSource          = sourceHTML("CDC", "https://www.cdc.gov/coronavirus/2019-ncov/index.html")
	cdcHouseholdSource = sourceHTML("Household Checklist, CDC", "https://www.cdc.gov/coronavirus/2019-ncov/daily-life-coping/checklist-household-ready.html")
	cdcSymptomsSource  = sourceHTML("Symptoms, CDC", "https://www.cdc.gov/coronavirus/2019-ncov/symptoms-testing/symptoms.html")
	diabetesSource     = sourceHTML("COVID-19 Resources, American Diabetes Association", "https://www.diabetes.org/coronavirus-covid-19")
	heartSource        = sourceHTML("COVID-19 Resources, American Heart Association", "https://www.heart.org/en/about-us/coronavirus-covid-19-resources")
	lungSource         = sourceHTML("COVID-19 Resources, American Lung Association", "https://www.lung.org/about-us/media/top-stories/update-covid-19.html")
	cdcAgeSource       = sourceHTML("Older Adults, CDC", "https://www.cdc.gov/coronavirus/2019-ncov/specific-groups/high-risk-complications/older-adults.html")
	cdcCopingSource    = sourceHTML("Daily Life and Coping, CDC", "https://www.cdc.gov/coronavirus/2019-ncov/daily-life-coping/index.html")
)

// Links embedded in card bodies.
var (
	linkCDCMain               = hyperlink("COVID-19 Resources For the Public (CDC)", "https://www.cdc.gov/coronavirus/2019-ncov/index.html")
	linkCDCHouseholdChecklist = hyperlink("Household Checklist (CDC)", "https://www.cdc.gov/coronavirus/2019-ncov/daily-life-coping/checklist-household-ready.html")
	linkCDCErrands            = hyperlink("Running Essential Errands (CDC)", "https://www.cdc.gov/coronavirus/2019-ncov/daily-life-coping/essential-goods-services.html")
	linkCDCStress             = hyperlink("Stress and Coping (CDC)", "https://www.cdc.gov/coronavirus/2019-ncov/daily-life-coping/managing-stress-anxiety.html")
	linkCDCChildren           = hyperlink("Caring for Children (CDC)", "https://www.cdc.gov/coronavirus/2019-ncov/daily-life-coping/children.html")
	linkCDCRecreation         = hyperlink("Visiting Parks and Recreational Facilities (CDC)", "https://www.cdc.gov/coronavirus/2019-ncov/daily-life-coping/visitors.html")
	linkCDCPets               = hyperlink("If You Have Animals (CDC)", "https://www.cdc.gov/coronavirus/2019-ncov/daily-life-coping/animals.html")
	linkCDCProtect            = hyperlink("How to Protect Yourself (CDC)", "https://www.cdc.gov/coronavirus/2019-ncov/prepare/prevention.html")
	linkCDCSick               = hyperlink("What to Do if Sick (CDC)", "https://www.cdc.gov/coronavirus/2019-ncov/about/steps-when-sick.html")
	linkCDCQA                 = hyperlink("Questions & Answers (CDC)", "https://www.cdc.gov/coronavirus/2019-ncov/faq.html")
	linkWHOAdvice             = hyperlink("Advice For the Public (WHO)", "https://www.who.int/emergencies/diseases/novel-coronavirus-2019/advice-for-public")
	linkGoogleHelp            = hyperlink("Help & Info (Google)", "https://www.google.com/search?q=coronavirus")
	linkTwitterCDC            = hyperlink("@CDCgov", "https://twitter.com/CDCgov")
	linkTwitterCDCEmergency   = hyperlink("@CDCemergency", "https://twitter.com/CDCemergency")
	linkTwitterWHO            = hyperlink("@WHO", "https://twitter.com/WHO")
	linkYouTubePrevent        = hyperlink("Steps to Prevent COVID-19 (CDC)", "https://www.youtube.com/watch?v=9Ay4u7OYOhA")
	linkYouTubeWash           = hyperlink("Hand-Washing (CDC)", "https://www.youtube.com/watch?v=d914EnpU4Fo")
	linkYouTubeManage         = hyperlink("Managing COVID-19 At Home (CDC))", "https://www.youtube.com/watch?v=qPoptbtBjkg")
)

// cardRegistry holds every card keyed by id. Ranks form a strict total
// order; ValidateTables rejects duplicates.
var cardRegistry = map[CardID]Card{
	CareMessageGeneralInfo: {
		Rank:   1,
		Title:  "Learn how to plan, prepare, and cope with stress during a COVID-19 outbreak",
		Type:   cardTypeAccordion,
		Text:   "Helpful resources:<ul><li>" + linkCDCHouseholdChecklist + "</li><li>" + linkCDCErrands + "</li><li>" + linkCDCStress + "</li><li>" + linkCDCChildren + "</li><li>" + linkCDCRecreation + "</li><li>" + linkCDCPets + "</li></ul>" + cdcCopingSource,
		Spoken: "Visit CDC.gov/coronavirus to learn how to plan, prepare, and cope with stress during a COVID-19 outbreak. Do you have any other questions?",
	},
	CareMessageCall911: {
		Rank:   2,
		Title:  "Call 911 now",
		Type:   cardTypeAccordion,
		Text:   "-pronoun1_up- may be having a medical emergency. -pronoun1_up- need immediate medical attention.<br><br>" + cdcSource,
		Spoken: "Call 911 now. -pronoun1_up- may be having a medical emergency. -pronoun1_up- need immediate medical attention. Source: CDC.",
	},
	CareMessagePediatricCare: {
		Rank:   3,
		Title:  "Seek medical care if your child is sick",
		Type:   cardTypeAccordion,
		Text:   "If the child is under two years old and sick, contact their healthcare provider as soon as possible.<br><br>Tell their provider if:<ul><li>The child had contact with someone with COVID-19</li><li>The child has been in an area where COVID-19 is spreading</li></ul>" + cdcSource,
		Spoken: "Seek medical care if your child is sick. If the child is under two years old and sick, contact their healthcare provider as soon as possible. Tell their provider if the child had contact with someone with COVID-19 or The child has been in an area where COVID-19 is spreading. Source: CDC.",
	},
	CareMessageEmergencyDept: {
		Rank:   4,
		Title:  "Go to the emergency department now",
		Type:   cardTypeAccordion,
		Text:   "-pronoun1_up- may need urgent medical attention.<br><br>Tell the medical staff if:<ul><li>-pronoun1_up- had contact with someone with COVID-19</li><li>-pronoun1_up- recently visited an area where COVID-19 is spreading</li></ul>" + cdcSource,
		Spoken: "Go to the emergency department now. -pronoun1_up- may need urgent medical attention.Tell the medical staff if -pronoun1- had contact with someone with COVID-19 or -pronoun1- recently visited an area where COVID-19 is spreading. Source: CDC.",
	},
	CareMessageCallProvider24h: {
		Rank:   5,
		Title:  "Call -pronoun2- healthcare provider in the next 24 hours",
		Type:   cardTypeAccordion,
		Text:   "-pronoun1_up- have at least one symptom that may be related to COVID-19. -pronoun1_up- also have at least one condition that means -pronoun1- may be at greater risk for complications from COVID-19.<br><br>If a call back is not received within 24 hours, see a medical provider. If symptoms get worse, seek care at an urgent care center or emergency department.",
		Spoken: "Call -pronoun2- healthcare provider in the next 24 hours. -pronoun1_up- have at least one symptom that may be related to COVID-19. -pronoun1_up- also have at least one condition that means -pronoun1- may be at greater risk for complications from COVID-19. If a call back is not received within 24 hours, see a medical provider. If symptoms get worse, seek care at an urgent care center or emergency department.",
	},
	CareMessageOccupationalHealth: {
		Rank:   6,
		Title:  "Contact the occupational health provider at -pronoun2- workplace immediately",
		Type:   cardTypeAccordion,
		Text:   "If -pronoun1- don't have an occupational health provider at -pronoun2- workplace, seek care with -pronoun2- usual provider.<br><br>Be sure to mention if:<ul><li>-pronoun1_up- work in a healthcare setting and may have been exposed to COVID-19</li><li>-pronoun1_up- have cared for a person who is sick with COVID-19</ul></li><br><br>If symptoms get worse, go to an urgent care center or emergency department, but call ahead to let them know the details above.<br><br>" + cdcSource,
		Spoken: "Contact the occupational health provider at -pronoun2- workplace immediately. If -pronoun1- don't have an occupational health provider at -pronoun2- workplace, seek care with -pronoun2- usual provider. Be sure to mention if -pronoun1- work in a healthcare setting and may have been exposed to COVID-19 or -pronoun1- have cared for a person who is sick with COVID-19. If symptoms get worse, go to an urgent care center or emergency department, but call ahead to let them know the details above. Source: CDC.",
	},
	CareMessageFacilityProvider: {
		Rank:   7,
		Title:  "Contact a healthcare provider at the facility where -pronoun1- live",
		Type:   cardTypeAccordion,
		Text:   "-pronoun1_up- may be at higher risk of COVID-19 because -pronoun1- live in a nursing home or long-term care facility.<br>Tell a caregiver at the facility that -pronoun1- are sick and need to see a medical provider as soon as possible.<br><br>" + cdcSource,
		Spoken: "Contact a healthcare provider at the facility where -pronoun1- live. -pronoun1_up- may be at higher risk of COVID-19 because -pronoun1- live in a nursing home or long-term care facility. Tell a caregiver at the facility that -pronoun1- are sick and need to see a medical provider as soon as possible. Source: CDC.",
	},
	CareMessageStayHome: {
		Rank:   8,
		Title:  "-pronoun1_up- should stay home and call -pronoun2- provider if -pronoun2- symptoms get worse",
		Type:   cardTypeAccordion,
		Text:   "In the meantime, -pronoun1- should follow these steps:<ul><li>Drink plenty of water and other clear liquids to prevent dehydration</li><li>Take over-the-counter medicines, such as acetaminophen, to help feel better</li></ul><br><br>" + cdcSource,
		Spoken: "-pronoun1_up- should stay home and call -pronoun2- provider if -pronoun2- symptoms get worse. In the meantime, -pronoun1- should drink plenty of water and other clear liquids to prevent dehydration and take over-the-counter medicines, such as acetaminophen, to help feel better. Source: CDC.",
	},
	CareMessageCall911OrED: {
		Rank:   9,
		Title:  "Call 911 or go to the emergency department now",
		Type:   cardTypeAccordion,
		Text:   "-pronoun1_up- may need urgent medical attention. Call 911 or go to -pronoun2- nearest emergency department right away.<br><br>Tell the medical staff if:<ul><li>-pronoun1_up- had contact with someone with COVID-19</li><li>-pronoun1_up- recently visited an area where COVID-19 is spreading</li></ul>" + cdcSource,
		Spoken: "Call 911 or go to the emergency department now. -pronoun1_up- may need urgent medical attention. Call 911 or go to -pronoun2- nearest emergency department right away. Tell the medical staff if -pronoun1- had contact with someone with COVID-19 or -pronoun1- recently visited an area where COVID-19 is spreading. Source: CDC.",
	},
	CardStayInRoom: {
		Rank:   10,
		Title:  "-pronoun1_up- should stay in -pronoun2- room except to get medical care",
		Type:   cardTypeAccordion,
		Text:   "To prevent getting other people sick -pronoun1- should stay in -pronoun2- room or apartment until -pronoun1- can talk with a healthcare provider in -pronoun2- facility.<br><br>Cover mouth and nose with a cloth face mask when outside the room.<br><br>" + cdcSource,
		Spoken: "-pronoun1_up- should stay in -pronoun2- room except to get medical care. To prevent getting other people sick -pronoun1- should stay in -pronoun2- room or apartment until -pronoun1- can talk with a healthcare provider in -pronoun2- facility. Cover mouth and nose with a cloth face mask when outside the room. Source: CDC.",
	},
	CardStayHome: {
		Rank:   11,
		Title:  "-pronoun1_up- should stay home except to get medical care",
		Type:   cardTypeAccordion,
		Text:   "-pronoun1_up- should stay home until talking with a healthcare provider. Until then to prevent getting other people sick, -pronoun1- should:<ul><li>Restrict activities outside the home, except for getting medical care</li><li>Avoid work, school, or public areas</li><li>Avoid using public transportation, ride-sharing, or taxis</li></ul>" + cdcSource,
		Spoken: "-pronoun1_up- should stay home except to get medical care. -pronoun1_up- should stay home until talking with a healthcare provider. Until then to prevent getting other people sick, -pronoun1- should restrict activities outside the home, except for getting medical care; avoid work, school, or public areas; and avoid using public transportation, ride-sharing, or taxis. Source: CDC.",
	},
	CardStaySeparated: {
		Rank:   12,
		Title:  "-pronoun1_up- should stay separated from other people and pets",
		Type:   cardTypeAccordion,
		Text:   "If -pronoun1- live with other people or pets, as much as possible -pronoun1- should stay in -pronoun2- own room and away from other people and pets, and ideally use a separate bathroom.<br><br>" + cdcSource,
		Spoken: "-pronoun1_up- should stay separated from other people and pets. If -pronoun1- live with other people or pets, as much as possible -pronoun1- should stay in -pronoun2- own room and away from other people and pets, and ideally use a separate bathroom. Source: CDC.",
	},
	CardFaceMask: {
		Rank:   13,
		Title:  "-pronoun1_up- should wear a cloth face mask, if possible",
		Type:   cardTypeAccordion,
		Text:   "-pronoun1_up- should wear a cloth face mask when:<ul><li>Sharing a room or vehicle with other people</li><li>Entering a healthcare provider's office </li><li>Going out in public</li></ul>If -pronoun1- aren't able to wear a cloth face mask, other members of the household shouldn't stay in the same room unless they wear a cloth face mask.<br><br>" + cdcSource,
		Spoken: "-pronoun1_up- should wear a cloth face mask, if possible. -pronoun1_up- should wear a cloth face mask when sharing a room or vehicle with others, entering a healthcare provider's office, or going out in public. If -pronoun1- aren't able to wear a cloth face mask, other members of the household shouldn't stay in the same room unless they wear a cloth face mask. Source: CDC.",
	},
	CardCoverCoughs: {
		Rank:   14,
		Title:  "Cover coughs and sneezes",
		Type:   cardTypeAccordion,
		Text:   "Cover the mouth and nose with a tissue when coughing or sneezing. Throw used tissues in a lined trash can and immediately wash hands.<br><br>" + cdcSource,
		Spoken: "Cover coughs and sneezes. Cover the mouth and nose with a tissue when coughing or sneezing. Throw used tissues in a lined trash can and immediately wash hands. Source: CDC.",
	},
	CardCleanHands: {
		Rank:   15,
		Title:  "Clean hands often",
		Type:   cardTypeAccordion,
		Text:   "To prevent spreading illness or getting sick, always keep hands clean by:<ul><li>Washing them often with soap and water for at least 20 seconds</li><li>Covering them with a sanitizer that contains 60-95% alcohol, then rubbing hands together until they feel dry</li></ul>Washing with soap and water is the best option to clean visibly dirty hands.<br>Avoid touching the eyes, nose, or mouth with unwashed hands.<br><br>" + cdcSource,
		Spoken: "Clean hands often. To prevent spreading illness or getting sick, always keep hands clean by washing them often with soap and water for at least 20 seconds or covering them with a sanitizer that contains 60-95% alcohol, then rubbing hands together until they feel dry. Washing with soap and water is the best option to clean visibly dirty hands. Avoid touching the eyes, nose, or mouth with unwashed hands. Source: CDC.",
	},
	CardDontShareItems: {
		Rank:   16,
		Title:  "Don't share personal household items",
		Type:   cardTypeAccordion,
		Text:   "-pronoun1_up- shouldn't share dishes, cups, utensils, towels, or bedding with other people or pets in the home.<br><br>These items should be washed thoroughly with soap and water after use.<br><br>" + cdcSource,
		Spoken: "Don't share personal household items. -pronoun1_up- shouldn't share dishes, cups, utensils, towels, or bedding with other people or pets in the home. These items should be washed thoroughly with soap and water after use. Source: CDC.",
	},
	CardCleanSurfaces: {
		Rank:   17,
		Title:  "Clean frequently-used surfaces every day",
		Type:   cardTypeAccordion,
		Text:   "Use a household cleaning spray or wipe to clean:<ul><li>Surfaces such as counters, tabletops, doorknobs, bathroom fixtures, toilets, and bedside tables</li><li>Devices such as phones, keyboards, and tablets</li><li>Any surfaces with blood, stool, or body fluids on them</li></ul>Be sure to follow the instructions on the label of the cleaning product for safe and effective use.<br><br>" + cdcSource,
		Spoken: "Clean frequently-used surfaces every day. Use a household cleaning spray or wipe to clean surfaces such as counters, tabletops, doorknobs, bathroom fixtures, toilets, and bedside tables, devices such as phones, keyboards, and tablets, and any surfaces with blood, stool, or body fluids on them. Be sure to follow the instructions on the label of the cleaning product for safe and effective use. Source: CDC.",
	},
	CardMonitor: {
		Rank:   18,
		Title:  "Monitor -pronoun2- symptoms",
		Type:   cardTypeAccordion,
		Text:   "-pronoun1_up- should seek medical attention right away if -pronoun2- symptoms get worse.<br><br>-pronoun1_up- should put on a cloth face mask before entering a healthcare facility to prevent others from getting sick.<br><br>" + cdcSource,
		Spoken: "Monitor -pronoun2- symptoms. -pronoun1_up- should seek medical attention right away if -pronoun2- symptoms get worse. -pronoun1_up- should put on a cloth face mask before entering a healthcare facility to prevent others from getting sick. Source: CDC.",
	},
	CardAvoidSpread: {
		Rank:   19,
		Title:  "Take steps to avoid getting or spreading COVID-19",
		Type:   cardTypeAccordion,
		Text:   "<ul><li>Wash hands frequently</li><li>Avoid touching eyes, nose, and mouth</li><li>Stay home when sick</li><li>Cover a cough or sneeze with a tissue, then throw the tissue in the trash</li><li>Clean and disinfect frequently touched objects and surfaces everyday</li><li>Cover mouth and nose with a cloth face mask when going out in public</li></ul>" + cdcHouseholdSource,
		Spoken: "Take steps to avoid getting or spreading COVID-19. Wash hands frequently. Avoid touching eyes, nose, and mouth. Stay home when sick. Cover a cough or sneeze with a tissue, then throw the tissue in the trash. Clean and disinfect frequently touched objects and surfaces everyday. Cover mouth and nose with a cloth face mask when going out in public. Source: Household Checklist, CDC.",
	},
	CardKnowSymptoms: {
		Rank:   20,
		Title:  "Know the symptoms",
		Type:   cardTypeAccordion,
		Text:   "Symptoms include:<ul><li>Fever, with a temperature above 100.4 °F or 38 °C</li><li>Cough</li><li>Shortness of breath or difficulty breathing</li><li>Chills</li><li>Muscle Pain</li><li>Sore throat</li><li>New loss of taste or smell</li></ul>Get medical attention right away if any of these emergency warning signs develop:<ul><li>Difficulty breathing</li><li>Constant chest pain or pressure</li><li>New confusion or new difficulty waking up</li><li>Bluish lips or face</li></ul>This list is not inclusive. Other less common symptoms have been reported, including gastrointestinal symptoms like nausea, vomiting, or diarrhea. Contact a medical provider for any severe or concerning symptoms." + cdcSymptomsSource,
		Spoken: "Know the symptoms of COVID-19. Symptoms include fever, with a temperature above 100.4 °F or 38 °C, cough, shortness of breath or difficulty breathing, chills, muscle pain, sore throat, and new loss of taste or smell. This list is not all inclusive. Other less common symptoms have been reported, including gastrointestinal symptoms like nausea, vomiting, or diarrhea. Get medical attention right away if any of these emergency warning signs develop: difficulty breathing, constant chest pain or pressure, new confusion or new difficulty waking up, bluish lips or face. Source: Symptoms, CDC.",
	},
	CardDiabetesPlan: {
		Rank:   21,
		Title:  "Make a plan if -pronoun1- have diabetes",
		Type:   cardTypeAccordion,
		Text:   "-pronoun1_up- may be at higher risk of getting very sick from COVID-19. -pronoun1_up- should take these steps:<ul><li>Gather phone numbers for -pronoun2- doctor and pharmacies, lists of medications, testing supplies, and prescription refills</li><li>Have enough household items and groceries on hand in case an extended stay at home is needed</li><li>Call -pronoun2- doctor if -pronoun1- develop new symptoms such as fever, cough, or shortness of breath</li><li>Meet with -pronoun2- doctor through telehealth options, if available</li></ul>" + diabetesSource,
		Spoken: "Make a plan if -pronoun1- have diabetes. -pronoun1_up- may be at higher risk of getting very sick from COVID-19. -pronoun1_up- should take these steps: gather phone numbers for -pronoun2- doctor and pharmacies, lists of medications, testing supplies, and prescription refills. Have enough household items and groceries on hand in case an extended stay at home is needed. Call -pronoun2- doctor if -pronoun1- develop new symptoms such as fever, cough, or shortness of breath. Meet with -pronoun2- doctor through telehealth options, if available. Source: COVID-19 Resources, American Diabetes Association.",
	},
	CardHeartPlan: {
		Rank:   22,
		Title:  "Make a plan if -pronoun1- have heart disease",
		Type:   cardTypeAccordion,
		Text:   "-pronoun1_up- may be at higher risk of getting very sick from COVID-19. -pronoun1_up- should take these steps:<ul><li>Gather phone numbers for -pronoun2- doctor and pharmacies, lists of medications, testing supplies, and prescription refills</li><li>Have enough household items and groceries on hand in case an extended stay at home is needed</li><li>Recognize and manage stress</li><li>Stay current with vaccinations, including pneumonia and flu shots</li></ul>" + heartSource,
		Spoken: "Make a plan if -pronoun1- have heart disease. -pronoun1_up- may be at higher risk of getting very sick from COVID-19. -pronoun1_up- should take these steps: Gather phone numbers for -pronoun2- doctor and pharmacies, lists of medications, testing supplies, and prescription refills. Have enough household items and groceries on hand in case an extended stay at home is needed. Recognize and manage stress. Stay current with vaccinations, including pneumonia and flu shots. Source: COVID-19 Resources, American Heart Association.",
	},
	CardLungPlan: {
		Rank:   23,
		Title:  "Make a plan if -pronoun1- have lung disease",
		Type:   cardTypeAccordion,
		Text:   "-pronoun1_up- may be at higher risk of getting very sick from COVID-19. -pronoun1_up- should take these steps:<ul><li>Keep a distance of least 6 feet from others</li><li>Call -pronoun2- doctor if -pronoun1- develop new symptoms such as fever, cough, or shortness of breath</li><li>Know and follow -pronoun2- Asthma Action Plan as needed</li><li>Many individuals use a nebulizer to take inhaled medications at home. If -pronoun1- have suspected or diagnosed COVID-19, speak with -pronoun2- healthcare provider about additional precautions to take when using -pronoun2- nebulizer.</li></ul>" + lungSource,
		Spoken: "Make a plan if -pronoun1- have lung disease. -pronoun1_up- may be at higher risk of getting very sick from COVID-19. -pronoun1_up- should take these steps: Keep a distance of least 6 feet from others. Call -pronoun2- doctor if -pronoun1- develop new symptoms such as fever, cough, or shortness of breath. Know and follow -pronoun2- Asthma Action Plan as needed. Many individuals use a nebulizer to take inhaled medications at home. If -pronoun1- have suspected or diagnosed COVID-19, speak with -pronoun2- healthcare provider about additional precautions to take when using -pronoun2- nebulizer. Source: COVID-19 Resources, American Lung Association.",
	},
	CardHigherRiskPlan: {
		Rank:   24,
		Title:  "Make a plan if -pronoun1- have higher risk factors",
		Type:   cardTypeAccordion,
		Text:   "-pronoun1_up- may be at higher risk of getting very sick from COVID-19 due to -pronoun2- age or health history. -pronoun1_up- should take these steps:<ul><li>Gather phone numbers for -pronoun2- doctor and pharmacies, lists of medications, testing supplies, and prescription refills</li><li>Have enough household items and groceries on hand in case an extended stay at home is needed</li><li>Keep a distance of least 6 feet from others</li><li>Call -pronoun2- doctor if -pronoun1- develop new symptoms such as fever, cough, or shortness of breath</li></ul>" + cdcAgeSource,
		Spoken: "Make a plan if -pronoun1- have higher risk factors. -pronoun1_up- may be at higher risk of getting very sick from COVID-19 due to -pronoun2- age or health history. -pronoun1_up- should take these steps: Gather phone numbers for -pronoun2- doctor and pharmacies, lists of medications, testing supplies, and prescription refills. Have enough household items and groceries on hand in case an extended stay at home is needed. Keep a distance of least 6 feet from others. Call -pronoun2- doctor if -pronoun1- develop new symptoms such as fever, cough, or shortness of breath. Source: CDC.",
	},
	CardStayUpToDate: {
		Rank:   25,
		Title:  "Stay up-to-date on COVID-19",
		Type:   cardTypeAccordion,
		Text:   "Helpful websites:<ul><li>" + linkCDCMain + "</li><li>" + linkWHOAdvice + "</li><li>" + linkGoogleHelp + "</li></ul>Twitter feeds:<ul><li>" + linkTwitterCDC + "</li><li>" + linkTwitterCDCEmergency + "</li><li>" + linkTwitterWHO + "</li></ul>",
		Spoken: "Visit CDC.gov/coronavirus to learn more about COVID-19. Do you have any other questions?",
	},
	CardStaySafe: {
		Rank:   26,
		Title:  "Learn more about staying safe",
		Type:   cardTypeAccordion,
		Text:   "Learn:<ul><li>" + linkCDCProtect + "</li><li>" + linkCDCSick + "</li><li>" + linkCDCQA + "</li></ul>Watch:<ul><li>" + linkYouTubePrevent + "</li><li>" + linkYouTubeWash + "</li><li>" + linkYouTubeManage + "</li></ul>",
		Spoken: "",
	},
}

// careMessageActionCards lists the action cards shown with each care message.
var careMessageActionCards = map[CardID][]CardID{
	CareMessageGeneralInfo:        {CardAvoidSpread, CardKnowSymptoms},
	CareMessageCall911:            {},
	CareMessagePediatricCare:      {},
	CareMessageEmergencyDept:      {},
	CareMessageCallProvider24h:    {CardStayHome, CardStaySeparated, CardFaceMask, CardCoverCoughs, CardCleanHands, CardDontShareItems, CardCleanSurfaces, CardMonitor},
	CareMessageOccupationalHealth: {CardStayHome, CardStaySeparated, CardFaceMask, CardCoverCoughs, CardCleanHands, CardDontShareItems, CardCleanSurfaces, CardMonitor},
	CareMessageFacilityProvider:   {CardStayInRoom, CardCoverCoughs, CardCleanHands},
	CareMessageStayHome:           {CardStayHome, CardStaySeparated, CardFaceMask, CardCoverCoughs, CardCleanHands, CardDontShareItems, CardCleanSurfaces, CardMonitor},
	CareMessageCall911OrED:        {},
	CareMessageNone:               {},
}

// labelCards adds condition-specific plans whenever the label is present,
// regardless of which care message fired.
var labelCards = map[Label][]CardID{
	LabelHealthRisk: {CardHigherRiskPlan},
	LabelLung:       {CardLungPlan},
	LabelCardio:     {CardHeartPlan},
	LabelDiabetes:   {CardDiabetesPlan},
}

// universalCards are appended to every non-emergency outcome.
var universalCards = []CardID{CardStayUpToDate, CardStaySafe}

// emergencyMessages get no universal or label cards; extra reading material
// must not dilute a call-911 instruction.
var emergencyMessages = map[CardID]bool{
	CareMessageCall911:       true,
	CareMessagePediatricCare: true,
	CareMessageEmergencyDept: true,
	CareMessageCall911OrED:   true,
}

func validateCards() error {
	ranks := make(map[int]CardID, len(cardRegistry))
	for id, card := range cardRegistry {
		if card.Rank <= 0 {
			return fmt.Errorf("%w: card %q has no rank", ErrConfig, id)
		}
		if prev, dup := ranks[card.Rank]; dup {
			return fmt.Errorf("%w: cards %q and %q share rank %d", ErrConfig, prev, id, card.Rank)
		}
		ranks[card.Rank] = id
	}
	for msg, extras := range careMessageActionCards {
		if msg != CareMessageNone {
			if _, ok := cardRegistry[msg]; !ok {
				return fmt.Errorf("%w: care message %q has no registry entry", ErrConfig, msg)
			}
		}
		for _, id := range extras {
			if _, ok := cardRegistry[id]; !ok {
				return fmt.Errorf("%w: care message %q references unknown card %q", ErrConfig, msg, id)
			}
		}
	}
	for label, ids := range labelCards {
		for _, id := range ids {
			if _, ok := cardRegistry[id]; !ok {
				return fmt.Errorf("%w: label %q references unknown card %q", ErrConfig, label, id)
			}
		}
	}
	for _, id := range universalCards {
		if _, ok := cardRegistry[id]; !ok {
			return fmt.Errorf("%w: universal card %q missing from registry", ErrConfig, id)
		}
	}
	for id := range emergencyMessages {
		if _, ok := careMessageActionCards[id]; !ok {
			return fmt.Errorf("%w: emergency message %q missing from action card table", ErrConfig, id)
		}
	}
	return nil
}
