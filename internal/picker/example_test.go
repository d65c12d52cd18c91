package picker_test

import (
	"fmt"
	"time"

	"github.com/MikeBiancalana/datespan/internal/dates"
	"github.com/MikeBiancalana/datespan/internal/focus"
	"github.com/MikeBiancalana/datespan/internal/picker"
	"github.com/MikeBiancalana/datespan/internal/selection"
)

func ExampleEngine_Cancel() {
	day := func(d int) dates.Value { return dates.Noon(2024, 1, d, time.UTC) }

	e := picker.New(picker.Options{
		Start:                day(10),
		End:                  day(15),
		KeepOpenOnDateSelect: true,
		Selection: selection.Options{
			IsDayBlocked:   dates.Never,
			IsOutsideRange: dates.Never,
		},
	}, picker.Hooks{
		OnCancel: func(r dates.Range) { fmt.Println("restored", r) },
	})

	e.FocusInput(focus.Start)
	e.OnDatesChange(day(12), day(20))
	fmt.Println("working", e.Working())
	e.Cancel()
	fmt.Println("open", e.IsOpen())
	// Output:
	// working 2024-01-12 → 2024-01-20
	// restored 2024-01-10 → 2024-01-15
	// open false
}
