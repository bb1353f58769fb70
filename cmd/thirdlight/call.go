package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	thirdlight "github.com/rethought/thirdlight-go"
)

var callCmd = &cobra.Command{
	Use:   "call <Module.Method> [key=value]...",
	Short: "Invoke any API method and print the JSON result",
	Long: `Invoke any API method and print the JSON result.

Parameter values are parsed as JSON when possible, so numbers, booleans and
structured values work:

  thirdlight call Files.GetAssetDetails assetId=123
  thirdlight call Files.SetMetadata assetId=123 'metadata={"caption":"x"}'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func runCall(cmd *cobra.Command, args []string) error {
	params, err := parseParams(args[1:])
	if err != nil {
		return err
	}

	client, err := newClient(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	res, err := client.Call(cmd.Context(), args[0], params)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(res.Interface(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// parseParams turns key=value arguments into call parameters. Values that
// parse as JSON keep their type, everything else stays a string.
func parseParams(args []string) (thirdlight.Params, error) {
	params := thirdlight.Params{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("parameter %q is not of the form key=value", arg)
		}

		var v any
		if err := json.Unmarshal([]byte(value), &v); err != nil {
			v = value
		}
		params[key] = v
	}
	return params, nil
}
