package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// render prints the {ok, result} envelope on success or {ok:false, error} on
// failure. The error is returned unchanged so the process still exits
// nonzero.
func render(cmd *cobra.Command, result any, err error) error {
	if err != nil {
		payload, mErr := json.Marshal(map[string]any{"ok": false, "error": err.Error()})
		if mErr != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(payload))
		return err
	}

	payload, mErr := json.Marshal(map[string]any{"ok": true, "result": result})
	if mErr != nil {
		return mErr
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(payload))
	return nil
}
