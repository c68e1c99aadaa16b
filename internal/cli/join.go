package cli

import (
	"fmt"

	"github.com/NikitaCOEUR/lookupsep/internal/pair"
)

// JoinParams contains parameters for the join command
type JoinParams struct {
	ConfigPath string
	Left      string
	Right     string
	Separator string
}

// Join prints the stored value for two halves
func Join(params JoinParams) error {
	sep, err := separatorFor(params.Separator, params.ConfigPath)
	if err != nil {
		return err
	}
	fmt.Println(pair.Join(pair.Pair{Left: params.Left, Right: params.Right}, sep))
	return nil
}
