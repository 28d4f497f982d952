package checkout

import "fmt"

// Step is the active checkout section.
type Step int

const (
	StepDelivery Step = iota + 1
	StepPayment
	StepReview
	StepPlaced
)

var stepNames = map[Step]string{
	StepDelivery: "delivery",
	StepPayment:  "payment",
	StepReview:   "review",
	StepPlaced:   "placed",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseStep accepts a section name or its number ("1".."3").
func ParseStep(raw string) (Step, bool) {
	switch raw {
	case "delivery", "1":
		return StepDelivery, true
	case "payment", "2":
		return StepPayment, true
	case "review", "3":
		return StepReview, true
	}
	return 0, false
}
