package cmd

import (
	"flag"

	"github.com/etnz/chart"
	"github.com/etnz/chart/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flag values that can be predicted.
var predictors = map[string]complete.Predictor{
	"kind":      predict.Set{chart.Interactive.String(), chart.Sparkline.String()},
	"policy":    predict.Set{chart.Nearest.String(), chart.Blend.String()},
	"timeframe": predict.Set{"1W", "1M", "3M", "6M", "1Y", "YTD", "ALL"},
	"ease":      predict.Set{"linear", "cubic"},
	"format":    predict.Set{"png", "svg"},
	"o":         predict.Files("*"),
	"events":    predict.Files("*.jsonl"),
}

// Completion returns the shell completion of the application, global flags
// being read from global.
func Completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(global),
	}
	for _, c := range Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		sub := &complete.Command{Flags: flagPredictors(f), Args: predict.Files("*")}
		if c.Name() == "topic" {
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(append(topics, "readme"))
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if p, ok := predictors[fl.Name]; ok {
			m[fl.Name] = p
			return
		}
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			m[fl.Name] = predict.Nothing
			return
		}
		m[fl.Name] = predict.Something
	})
	return m
}
