package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aurevix/gtjiu-client/pkg/apiclient"
	"github.com/spf13/cobra"
)

func (c *cli) requestCmd() *cobra.Command {
	var (
		data    string
		headers map[string]string
		auth    bool
	)
	cmd := &cobra.Command{
		Use:   "request <method> <path>",
		Short: "Send an arbitrary request to the API",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[1]
			if !strings.HasPrefix(path, "/") {
				path = "/" + path
			}
			req := apiclient.Request{Method: args[0], Path: path, Headers: headers}
			if data != "" {
				var body any
				if err := json.Unmarshal([]byte(data), &body); err != nil {
					return fmt.Errorf("--data is not valid json: %w", err)
				}
				req.Body = body
			}
			if auth {
				token, err := c.app.RequireToken()
				if err != nil {
					return err
				}
				req.Credential = apiclient.Bearer(token)
			}
			out, err := c.app.Client().Do(cmd.Context(), req)
			if err != nil {
				return err
			}
			return c.print(out)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON request body")
	cmd.Flags().StringToStringVarP(&headers, "header", "H", nil, "extra header (key=value)")
	cmd.Flags().BoolVar(&auth, "auth", false, "send the session token")
	return cmd
}
