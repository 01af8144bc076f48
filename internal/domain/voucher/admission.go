package voucher

import "fmt"

// AdmissionResult is the verdict of the admission gate for one (voucher, user) pair.
// The numeric values are the wire codes returned by the gate script.
type AdmissionResult int64

const (
	Admitted  AdmissionResult = 0
	NoStock   AdmissionResult = 1
	Duplicate AdmissionResult = 2
)

func ParseAdmissionResult(code int64) (AdmissionResult, error) {
	switch r := AdmissionResult(code); r {
	case Admitted, NoStock, Duplicate:
		return r, nil
	default:
		return 0, fmt.Errorf("unknown admission code %d", code)
	}
}

func (r AdmissionResult) String() string {
	switch r {
	case Admitted:
		return "admitted"
	case NoStock:
		return "no_stock"
	case Duplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}
