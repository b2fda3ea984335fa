package typeform_dto

import (
	"errors"
	"fmt"
	"typeform-connector/internal/pkg/constvars"
)

var (
	ErrAnswerTypeUnknown     = errors.New("unknown answer type")
	ErrAnswerPayloadMissing  = errors.New("answer has no payload for its type")
	ErrAnswerPayloadConflict = errors.New("answer carries a payload for a different type")
)

// AnswerContent is the extracted payload of an Answer. Exactly one
// implementation exists per answer type discriminant.
type AnswerContent interface {
	doNotImplement(AnswerContent)
}

type AnswerDate string
type AnswerEmail string
type AnswerURL string
type AnswerFileURL string
type AnswerNumber int32
type AnswerBoolean bool
type AnswerText string
type AnswerPhoneNumber string

func (Choice) doNotImplement(AnswerContent) {}
func (Choices) doNotImplement(AnswerContent) {}
func (Payment) doNotImplement(AnswerContent) {}
func (AnswerDate) doNotImplement(AnswerContent) {}
func (AnswerEmail) doNotImplement(AnswerContent) {}
func (AnswerURL) doNotImplement(AnswerContent) {}
func (AnswerFileURL) doNotImplement(AnswerContent) {}
func (AnswerNumber) doNotImplement(AnswerContent) {}
func (AnswerBoolean) doNotImplement(AnswerContent) {}
func (AnswerText) doNotImplement(AnswerContent) {}
func (AnswerPhoneNumber) doNotImplement(AnswerContent) {}

var answerTypes = map[string]bool{
	constvars.AnswerTypeChoice:      true,
	constvars.AnswerTypeChoices:     true,
	constvars.AnswerTypeDate:        true,
	constvars.AnswerTypeEmail:       true,
	constvars.AnswerTypeURL:         true,
	constvars.AnswerTypeFileURL:     true,
	constvars.AnswerTypeNumber:      true,
	constvars.AnswerTypeBoolean:     true,
	constvars.AnswerTypeText:        true,
	constvars.AnswerTypePayment:     true,
	constvars.AnswerTypePhoneNumber: true,
}

func KnownAnswerType(answerType string) bool {
	return answerTypes[answerType]
}

// Content matches the type discriminant against the populated payload
// slot and extracts it. The wire format decodes every slot
// independently, so the discriminant and payload can disagree on
// malformed documents; Content rejects those instead of guessing.
func (a Answer) Content() (AnswerContent, error) {
	if !KnownAnswerType(a.Type) {
		return nil, fmt.Errorf("%w: %q", ErrAnswerTypeUnknown, a.Type)
	}

	slots := a.populatedSlots()
	for _, slot := range slots {
		if slot.name != a.Type {
			return nil, fmt.Errorf("%w: type %q, payload %q", ErrAnswerPayloadConflict, a.Type, slot.name)
		}
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrAnswerPayloadMissing, a.Type)
	}
	return slots[0].content, nil
}

type answerSlot struct {
	name    string
	content AnswerContent
}

func (a Answer) populatedSlots() []answerSlot {
	slots := make([]answerSlot, 0, 1)
	if a.Choice != nil {
		slots = append(slots, answerSlot{constvars.AnswerTypeChoice, *a.Choice})
	}
	if a.Choices != nil {
		slots = append(slots, answerSlot{constvars.AnswerTypeChoices, *a.Choices})
	}
	if a.Date != nil {
		slots = append(slots, answerSlot{constvars.AnswerTypeDate, AnswerDate(*a.Date)})
	}
	if a.Email != nil {
		slots = append(slots, answerSlot{constvars.AnswerTypeEmail, AnswerEmail(*a.Email)})
	}
	if a.URL != nil {
		slots = append(slots, answerSlot{constvars.AnswerTypeURL, AnswerURL(*a.URL)})
	}
	if a.FileURL != nil {
		slots = append(slots, answerSlot{constvars.AnswerTypeFileURL, AnswerFileURL(*a.FileURL)})
	}
	if a.Number != nil {
		slots = append(slots, answerSlot{constvars.AnswerTypeNumber, AnswerNumber(*a.Number)})
	}
	if a.Boolean != nil {
		slots = append(slots, answerSlot{constvars.AnswerTypeBoolean, AnswerBoolean(*a.Boolean)})
	}
	if a.Text != nil {
		slots = append(slots, answerSlot{constvars.AnswerTypeText, AnswerText(*a.Text)})
	}
	if a.Payment != nil {
		slots = append(slots, answerSlot{constvars.AnswerTypePayment, *a.Payment})
	}
	if a.PhoneNumber != nil {
		slots = append(slots, answerSlot{constvars.AnswerTypePhoneNumber, AnswerPhoneNumber(*a.PhoneNumber)})
	}
	return slots
}
