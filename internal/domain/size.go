package domain

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// SizeConfig is a named fixture dimension: how many data rows and columns
// a generated CSV file carries.
type SizeConfig struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
}

// String renders the configuration the way the console prints it, e.g. "small (1,000 rows × 5 columns)".
func (s SizeConfig) String() string {
	return fmt.Sprintf("%s (%s rows × %d columns)", s.Name, GroupThousands(s.Rows), s.Cols)
}

// GroupThousands formats n with comma thousand separators.
func GroupThousands(n int) string {
	return humanize.Comma(int64(n))
}
