package cli

import (
	"fmt"

	"github.com/NikitaCOEUR/lookupsep/internal/derrors"
	"github.com/NikitaCOEUR/lookupsep/internal/pair"
)

// SplitParams contains parameters for the split command
type SplitParams struct {
	ConfigPath string
	Value     string
	Separator string
	// Side prints only one half when set
	Side string
}

// Split prints the two halves of a stored value, one per line
func Split(params SplitParams) error {
	sep, err := separatorFor(params.Separator, params.ConfigPath)
	if err != nil {
		return err
	}

	p, ok := pair.Parse(params.Value, sep)
	if !ok {
		return derrors.NewParseError(params.Value, fmt.Sprintf("value is not a pair separated by %q", sep))
	}

	if params.Side != "" {
		side, err := pair.ParseSide(params.Side)
		if err != nil {
			return err
		}
		fmt.Println(p.Get(side))
		return nil
	}

	fmt.Println(p.Left)
	fmt.Println(p.Right)
	return nil
}
