package billing

import (
	"log/slog"
	"sort"

	"affitto/internal/config"
	"affitto/internal/core"
)

// Calculator resolves one billing run against a loaded configuration.
//
// The due date is the first of the month after today. The rent schedule is
// resolved against the due date; utilities are resolved against today's
// billing month. That asymmetry is deliberate: the statement charges next
// month's rent together with the utility bill that just arrived.
//
// Both lookups happen once, here, and the resolved values are reused for
// every person in the run.
type Calculator struct {
	cfg       *config.Config
	today     core.Date
	dueDate   core.Date
	dueRents  map[string]core.Money
	utilities map[string]core.Money
	numPayers int
}

// NewCalculator resolves the due date, the applicable rent schedule entry
// and the billing month's utilities. It fails fast with
// *ScheduleNotFoundError or *NoUtilityInfoError.
func NewCalculator(cfg *config.Config, today core.Date) (*Calculator, error) {
	dueDate := today.FirstOfNextMonth()

	rents, since, err := rentsAsOf(cfg.Rent, dueDate)
	if err != nil {
		return nil, err
	}
	slog.Info("Resolved rent schedule entry",
		"since", since.ISO(),
		"due_date", dueDate.ISO())

	utilities, err := utilitiesFor(cfg.Utilities, today)
	if err != nil {
		return nil, err
	}

	return &Calculator{
		cfg:       cfg,
		today:     today,
		dueDate:   dueDate,
		dueRents:  rents,
		utilities: utilities,
		numPayers: len(cfg.People) + 1,
	}, nil
}

// rentsAsOf selects the last schedule entry whose Since is on or before the
// target date, walking from the most recent entry backwards.
func rentsAsOf(schedule []config.RentPeriod, target core.Date) (map[string]core.Money, core.Date, error) {
	for i := len(schedule) - 1; i >= 0; i-- {
		if !target.Before(schedule[i].Since) {
			return schedule[i].Splits, schedule[i].Since, nil
		}
	}
	return nil, core.Date{}, &ScheduleNotFoundError{Date: target}
}

// utilitiesFor returns the category->amount mapping for the month of the
// given date.
func utilitiesFor(utilities map[int]map[int]map[string]core.Money, day core.Date) (map[string]core.Money, error) {
	if months, ok := utilities[day.Year()]; ok {
		if cats, ok := months[int(day.Month())]; ok {
			return cats, nil
		}
	}
	return nil, &NoUtilityInfoError{Month: day.YearMonth()}
}

// DueDate is the first of the month being charged.
func (c *Calculator) DueDate() core.Date {
	return c.dueDate
}

// NumPayers is everyone sharing utility costs: the configured people plus
// one implicit unlisted payer.
func (c *Calculator) NumPayers() int {
	return c.numPayers
}

// RentFor returns the person's rent on the due date.
func (c *Calculator) RentFor(name string) (core.Money, error) {
	rent, ok := c.dueRents[name]
	if !ok {
		return core.Money{}, &UnknownPersonError{Name: name}
	}
	return rent, nil
}

// Components builds the person's statement lines: the undivided rent first,
// then one shared line per utility category in ascending category order.
func (c *Calculator) Components(name string) ([]Component, error) {
	rent, err := c.RentFor(name)
	if err != nil {
		return nil, err
	}

	comps := make([]Component, 0, 1+len(c.utilities))
	rentComp, err := NewComponent("Rent", rent, 1)
	if err != nil {
		return nil, err
	}
	comps = append(comps, rentComp)

	cats := make([]string, 0, len(c.utilities))
	for cat := range c.utilities {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	for _, cat := range cats {
		comp, err := NewComponent(cat, c.utilities[cat], c.numPayers)
		if err != nil {
			return nil, err
		}
		comps = append(comps, comp)
	}
	return comps, nil
}

// Statement computes the person's itemized statement. The total is the
// half-up rounded sum of the exact component shares, cross-checked against
// an independent computation (rent plus the evenly divided utility sum);
// disagreement is a fatal *TotalMismatchError.
func (c *Calculator) Statement(name string) (*Statement, error) {
	comps, err := c.Components(name)
	if err != nil {
		return nil, err
	}

	total := sumShares(comps)

	rent := c.dueRents[name]
	var utilSum int64
	for _, v := range c.utilities {
		utilSum += v.Cents
	}
	n := int64(c.numPayers)
	check := core.Money{Cents: core.RoundDiv(rent.Cents*n+utilSum, n)}

	if total != check {
		return nil, &TotalMismatchError{Got: total, Want: check}
	}

	return &Statement{
		Person:     name,
		DueDate:    c.dueDate,
		Components: comps,
		Total:      total,
	}, nil
}

// Statement is one person's itemized charge for the due month.
type Statement struct {
	Person     string
	DueDate    core.Date
	Components []Component
	Total      core.Money
}
