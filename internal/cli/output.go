package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/crandicha/acncheck/pkg/resultstore"
)

type printer func(w io.Writer, res resultstore.Result) error

func newPrinter(format string) printer {
	if format == OutputJSON {
		return printJSON
	}
	return printText
}

func printJSON(w io.Writer, res resultstore.Result) error {
	return json.NewEncoder(w).Encode(res)
}

func printText(w io.Writer, res resultstore.Result) error {
	status := "FAIL"
	switch {
	case res.Summary.IsPending():
		status = "EMPTY"
	case res.Summary.Success:
		status = "PASS"
	}

	if res.Summary.Message != "" {
		if _, err := fmt.Fprintf(w, "%q %s: %s\n", res.Value, status, res.Summary.Message); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintf(w, "%q %s\n", res.Value, status); err != nil {
		return err
	}

	for _, v := range res.Breakdown {
		mark := "fail"
		if v.Success {
			mark = "ok"
		}
		if _, err := fmt.Fprintf(w, "  %-4s %s\n", mark, v.Message); err != nil {
			return err
		}
	}
	return nil
}

// printRules writes the active rule set with its effective success message,
// as YAML for text output so it can be saved and passed back with -rules.
func printRules(cfg Config, p pipeline, w io.Writer) error {
	set := p.set
	set.SuccessMessage = p.successMessage
	if cfg.Output == OutputJSON {
		return json.NewEncoder(w).Encode(set)
	}
	data, err := set.Marshal()
	if err != nil {
		return fmt.Errorf("encode rule set: %w", err)
	}
	_, err = w.Write(data)
	return err
}
