package orchestration

import (
	"github.com/agbru/numcalc/internal/config"
	"github.com/agbru/numcalc/internal/numeric"
)

// GetCalculatorsToRun determines which calculators should be executed based on
// the configuration: both variants of the command in compare mode, otherwise
// the single variant selected by --rec.
//
// Parameters:
//   - cfg: The application configuration containing the command selection.
//   - factory: The calculator factory to retrieve implementations from.
//
// Returns:
//   - []numeric.Calculator: The calculators to execute, iterative first.
//     Empty when the command has no calculator (e.g. prime).
func GetCalculatorsToRun(cfg config.AppConfig, factory numeric.Factory) []numeric.Calculator {
	var names []string
	if cfg.Compare {
		names = numeric.Variants(cfg.Command)
	} else if name, ok := numeric.Lookup(cfg.Command, cfg.Recursive); ok {
		names = []string{name}
	}

	calculators := make([]numeric.Calculator, 0, len(names))
	for _, name := range names {
		if calc, err := factory.Get(name); err == nil {
			calculators = append(calculators, calc)
		}
	}
	return calculators
}
