package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/mechviz/internal/figure"
)

type Document struct {
	ID         string        `json:"id"`
	ExportedAt time.Time     `json:"exported_at"`
	Figure     figure.Figure `json:"figure"`
}

func NewDocument(fig figure.Figure) Document {
	return Document{
		ID:         uuid.NewString(),
		ExportedAt: time.Now().UTC(),
		Figure:     fig,
	}
}

func JSON(w io.Writer, fig figure.Figure) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewDocument(fig))
}

// CSV writes one row per sample: chart name, x, y.
func CSV(w io.Writer, fig figure.Figure) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"chart", "x", "y"}); err != nil {
		return err
	}

	charts := []struct {
		name string
		spec figure.Spec
	}{
		{"positive", fig.Positive},
		{"negative", fig.Negative},
		{"resultant", fig.Resultant},
	}
	for _, c := range charts {
		s := c.spec.Series
		for i := range s.X {
			row := []string{
				c.name,
				strconv.FormatFloat(s.X[i], 'g', -1, 64),
				strconv.FormatFloat(s.Y[i], 'g', -1, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
