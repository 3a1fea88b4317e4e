package triage

import (
	"reflect"
	"strings"
	"testing"
)

var testBinding = PronounBinding{Pronoun1: "you", Pronoun2: "your", Pronoun1Up: "You"}

func TestComposeEmergencyMessageGetsNoExtras(t *testing.T) {
	labels := LabelSet{LabelMe, LabelSevere, LabelHealthRisk}
	message := Resolve(labels)
	if message != CareMessageEmergencyDept {
		t.Fatalf("Resolve = %s, want %s", message, CareMessageEmergencyDept)
	}

	visual, spoken, err := Compose(message, labels, testBinding)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if len(visual) != 1 {
		t.Fatalf("emergency outcome composed %d cards, want 1: %+v", len(visual), visual)
	}
	if visual[0].Title != "Go to the emergency department now" {
		t.Fatalf("unexpected card title %q", visual[0].Title)
	}
	if !strings.HasPrefix(spoken, "Go to the emergency department now.") {
		t.Fatalf("unexpected spoken text %q", spoken)
	}
}

func TestComposeStayHomeWithConditionCards(t *testing.T) {
	labels := LabelSet{LabelMe, LabelSymptomatic, LabelLung, LabelHealthRisk}
	message := Resolve(labels)
	if message != CareMessageStayHome {
		t.Fatalf("Resolve = %s, want %s", message, CareMessageStayHome)
	}

	ids, err := composeCardIDs(message, labels)
	if err != nil {
		t.Fatalf("composeCardIDs failed: %v", err)
	}
	want := []CardID{
		CareMessageStayHome,
		CardStayHome, CardStaySeparated, CardFaceMask, CardCoverCoughs,
		CardCleanHands, CardDontShareItems, CardCleanSurfaces, CardMonitor,
		CardLungPlan, CardHigherRiskPlan,
		CardStayUpToDate, CardStaySafe,
	}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("composed ids = %v, want %v", ids, want)
	}

	visual, _, err := Compose(message, labels, testBinding)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if len(visual) != len(want) {
		t.Fatalf("composed %d visual cards, want %d", len(visual), len(want))
	}
	// Descending by rank: least urgent first, care message at the bottom.
	if visual[0].Title != "Learn more about staying safe" {
		t.Fatalf("first visual card = %q, want the staying-safe card", visual[0].Title)
	}
	last := visual[len(visual)-1]
	if !strings.Contains(last.Title, "You should stay home and call your provider") {
		t.Fatalf("last visual card = %q, want the stay-home care message", last.Title)
	}
}

func TestComposeVisualAndSpokenOrdersAreReverses(t *testing.T) {
	labels := LabelSet{LabelMe, LabelSymptomatic, LabelDiabetes, LabelHealthRisk}
	message := Resolve(labels)

	ids, err := composeCardIDs(message, labels)
	if err != nil {
		t.Fatalf("composeCardIDs failed: %v", err)
	}
	visual, _, err := Compose(message, labels, testBinding)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	for i := range visual {
		card := cardRegistry[ids[len(ids)-1-i]]
		if visual[i].Title != Substitute(card.Title, testBinding) {
			t.Fatalf("visual[%d] = %q, want %q", i, visual[i].Title, Substitute(card.Title, testBinding))
		}
	}
}

func TestComposeIsIdempotent(t *testing.T) {
	labels := LabelSet{LabelSomeoneElse, LabelSymptomatic, LabelCardio, LabelHealthRisk, LabelHCP}
	message := Resolve(labels)

	binding := PronounBinding{Pronoun1: "they", Pronoun2: "their", Pronoun1Up: "They"}
	visual1, spoken1, err := Compose(message, labels, binding)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	visual2, spoken2, err := Compose(message, labels, binding)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if !reflect.DeepEqual(visual1, visual2) || spoken1 != spoken2 {
		t.Fatal("composing twice from the same inputs gave different results")
	}
}

func TestComposeNoCareMessage(t *testing.T) {
	labels := LabelSet{LabelMe, LabelAsymptomatic}
	message := Resolve(labels)
	if message != CareMessageNone {
		t.Fatalf("Resolve = %s, want %s", message, CareMessageNone)
	}

	ids, err := composeCardIDs(message, labels)
	if err != nil {
		t.Fatalf("composeCardIDs failed: %v", err)
	}
	want := []CardID{CardStayUpToDate, CardStaySafe}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("composed ids = %v, want just the universal cards %v", ids, want)
	}
}

func TestComposeWithoutBindingLeavesPlaceholders(t *testing.T) {
	labels := LabelSet{LabelSymptomatic}
	visual, spoken, err := Compose(Resolve(labels), labels, PronounBinding{})
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	found := false
	for _, card := range visual {
		if strings.Contains(card.Title, "-pronoun1_up-") || strings.Contains(card.Text, "-pronoun1-") {
			found = true
		}
	}
	if !found {
		t.Fatal("expected literal placeholders to survive with no pronoun binding")
	}
	if strings.Contains(spoken, "You ") {
		t.Fatal("spoken text must not fabricate pronouns without a binding")
	}
}
