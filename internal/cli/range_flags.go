package cli

import (
	"fmt"
	"time"

	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/spf13/pflag"
)

// rangeFlags is the shared --from/--to/--year flag trio used by every
// report command. Without flags the range defaults to the current
// calendar year.
type rangeFlags struct {
	from string
	to   string
	year int
}

func (f *rangeFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.from, "from", "", "Range start (YYYY-MM)")
	fs.StringVar(&f.to, "to", "", "Range end (YYYY-MM)")
	fs.IntVar(&f.year, "year", 0, "Calendar year when no range is given (default: current)")
}

func (f *rangeFlags) resolve() (domain.PeriodRange, error) {
	if f.from == "" && f.to == "" {
		year := f.year
		if year == 0 {
			year = time.Now().Year()
		}
		return domain.PeriodRange{
			From: domain.Period{Year: year, Month: 1},
			To:   domain.Period{Year: year, Month: 12},
		}, nil
	}
	if f.from == "" || f.to == "" {
		return domain.PeriodRange{}, fmt.Errorf("--from and --to must be given together")
	}
	from, err := domain.ParsePeriod(f.from)
	if err != nil {
		return domain.PeriodRange{}, err
	}
	to, err := domain.ParsePeriod(f.to)
	if err != nil {
		return domain.PeriodRange{}, err
	}
	rng := domain.PeriodRange{From: from, To: to}
	return rng, rng.Validate()
}
