package model

import "fmt"

type Kingdom int

const (
	KingdomBacteria Kingdom = iota
	KingdomArchaea
)

func (k Kingdom) String() string {
	switch k {
	case KingdomBacteria:
		return "bacteria"
	case KingdomArchaea:
		return "archaea"
	default:
		return fmt.Sprintf("Kingdom(%d)", int(k))
	}
}

// ParseKingdom accepts exactly "bacteria" or "archaea".
func ParseKingdom(name string) (Kingdom, error) {
	switch name {
	case "bacteria":
		return KingdomBacteria, nil
	case "archaea":
		return KingdomArchaea, nil
	default:
		return 0, fmt.Errorf("%w: %q, kingdom must either be \"bacteria\" or \"archaea\"", ErrInvalidKingdom, name)
	}
}

// Threshold is the number of non-duplicated markers a bin has to exceed,
// roughly half of the kingdom's single-copy marker set.
func (k Kingdom) Threshold() int {
	switch k {
	case KingdomArchaea:
		return ArchaeaThreshold
	default:
		return BacteriaThreshold
	}
}
