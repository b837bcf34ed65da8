package cmd

import (
	"github.com/etnz/zenledger/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete runs the shell completion when the shell asks for it, and exits.
// It does nothing otherwise.
func Complete(name string) {
	completion().Complete(name)
}

// completion describes the command line for the shell completion.
func completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"fiat":      predict.Set{"USD", "EUR", "GBP", "CAD", "JPY", "CHF", "AUD"},
			"holder":    predict.Something,
			"transfers": predict.Set{"disposal", "intra"},
		},
		Sub: map[string]*complete.Command{
			"convert": {
				Flags: map[string]complete.Predictor{
					"exchange": predict.Something,
					"workers":  predict.Something,
					"format":   predict.Set{"csv", "json"},
					"records":  predict.Something,
					"dir":      predict.Dirs("*"),
					"prefix":   predict.Something,
					"q":        predict.Nothing,
				},
				Args: predict.Files("*"),
			},
			"types": {},
			"topic": {Args: predict.Set(append([]string{docs.All}, topics...))},
			"help":  {},
			"flags": {},
		},
	}
}
