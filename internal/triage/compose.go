package triage

import (
	"fmt"
	"sort"
	"strings"
)

// RenderedCard is one visual card with pronouns already substituted.
type RenderedCard struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Type  string `json:"type"`
}

// composeCardIDs collects the full card set for a resolved care message and
// label set, deduplicated and sorted ascending by rank. A card can be
// reachable both through the care-message table and a label, so set
// semantics apply before any ordering.
func composeCardIDs(message CardID, labels LabelSet) ([]CardID, error) {
	extras, ok := careMessageActionCards[message]
	if !ok {
		return nil, fmt.Errorf("%w: care message %q has no action card entry", ErrConfig, message)
	}

	var ids []CardID
	if message != CareMessageNone {
		ids = append(ids, message)
	}
	ids = append(ids, extras...)
	if !emergencyMessages[message] {
		ids = append(ids, universalCards...)
		for _, label := range labels {
			ids = append(ids, labelCards[label]...)
		}
	}

	seen := make(map[CardID]bool, len(ids))
	deduped := ids[:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		if _, ok := cardRegistry[id]; !ok {
			return nil, fmt.Errorf("%w: card %q missing from registry", ErrConfig, id)
		}
		seen[id] = true
		deduped = append(deduped, id)
	}

	sort.Slice(deduped, func(i, j int) bool {
		return cardRegistry[deduped[i]].Rank < cardRegistry[deduped[j]].Rank
	})
	return deduped, nil
}

// Compose assembles both renditions of the final guidance: the visual card
// sequence ordered descending by rank (the most urgent card renders last,
// nearest the chat input box) and the spoken utterance ordered ascending
// (the most urgent guidance is said first).
func Compose(message CardID, labels LabelSet, pronouns PronounBinding) ([]RenderedCard, string, error) {
	ids, err := composeCardIDs(message, labels)
	if err != nil {
		return nil, "", err
	}

	visual := make([]RenderedCard, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		card := cardRegistry[ids[i]]
		visual = append(visual, RenderedCard{
			Title: Substitute(card.Title, pronouns),
			Text:  Substitute(card.Text, pronouns),
			Type:  card.Type,
		})
	}

	spokenParts := make([]string, 0, len(ids))
	for _, id := range ids {
		if spoken := cardRegistry[id].Spoken; spoken != "" {
			spokenParts = append(spokenParts, Substitute(spoken, pronouns))
		}
	}
	return visual, strings.Join(spokenParts, " "), nil
}
