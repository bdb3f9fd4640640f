package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledgerdesk-cli",
		Short: "LedgerDesk CLI tool",
		Long:  `A command line interface for interacting with the LedgerDesk API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the LedgerDesk API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(accountsCmd(), ledgerCmd(), dashboardCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account operations",
	}

	var (
		page   int
		size   int
		status string
		search string
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			query.Set("page", strconv.Itoa(page))
			query.Set("page_size", strconv.Itoa(size))
			if status != "" {
				query.Set("status", status)
			}
			if search != "" {
				query.Set("search", search)
			}

			body, err := apiGet("/api/accounts?" + query.Encode())
			if err != nil {
				return err
			}

			var result struct {
				Items []struct {
					ID           string `json:"id"`
					CustomerName string `json:"customer_name"`
					Phone        string `json:"phone"`
					Balance      string `json:"balance"`
					IsDeleted    bool   `json:"is_deleted"`
				} `json:"items"`
				Page       int   `json:"page"`
				TotalPages int   `json:"total_pages"`
				TotalCount int64 `json:"total_count"`
			}
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCUSTOMER\tPHONE\tBALANCE\tSTATUS")
			for _, a := range result.Items {
				state := "active"
				if a.IsDeleted {
					state = "inactive"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					a.ID, truncate(a.CustomerName, 30), a.Phone, a.Balance, state)
			}
			w.Flush()

			fmt.Printf("page %d of %d (%d accounts)\n", result.Page, result.TotalPages, result.TotalCount)

			return nil
		},
	}

	listCmd.Flags().IntVar(&page, "page", 1, "Page number")
	listCmd.Flags().IntVar(&size, "size", 10, "Page size")
	listCmd.Flags().StringVar(&status, "status", "", "Filter: active, inactive or all")
	listCmd.Flags().StringVar(&search, "search", "", "Search by name, phone or account number")

	var (
		name   string
		phone  string
		number string
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{"customer_name": name}
			if phone != "" {
				payload["phone"] = phone
			}
			if number != "" {
				payload["account_number"] = number
			}

			body, err := apiPost("/api/accounts", payload)
			if err != nil {
				return err
			}

			return printRawJSON(body)
		},
	}

	createCmd.Flags().StringVar(&name, "name", "", "Customer name (required)")
	createCmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	createCmd.Flags().StringVar(&number, "number", "", "Account number")
	createCmd.MarkFlagRequired("name")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Soft-delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apiDelete("/api/accounts/" + args[0]); err != nil {
				return err
			}

			fmt.Println("account deleted")

			return nil
		},
	}

	cmd.AddCommand(listCmd, createCmd, deleteCmd)

	return cmd
}

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	showCmd := &cobra.Command{
		Use:   "show <accountId>",
		Short: "Show an account's ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := apiGet("/api/ledger/" + args[0])
			if err != nil {
				return err
			}

			return printRawJSON(body)
		},
	}

	var (
		account     string
		entryType   int
		amount      string
		description string
	)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Append a ledger entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{
				"account_id": account,
				"type":       entryType,
				"amount":     amount,
			}
			if description != "" {
				payload["description"] = description
			}

			body, err := apiPost("/api/ledger", payload)
			if err != nil {
				return err
			}

			return printRawJSON(body)
		},
	}

	addCmd.Flags().StringVar(&account, "account", "", "Account ID (required)")
	addCmd.Flags().IntVar(&entryType, "type", 0, "Entry type: 1=debit, 2=credit (required)")
	addCmd.Flags().StringVar(&amount, "amount", "", "Amount (required)")
	addCmd.Flags().StringVar(&description, "description", "", "Optional description")
	addCmd.MarkFlagRequired("account")
	addCmd.MarkFlagRequired("type")
	addCmd.MarkFlagRequired("amount")

	cmd.AddCommand(showCmd, addCmd)

	return cmd
}

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Dashboard operations",
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show account counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := apiGet("/api/dashboard/stats")
			if err != nil {
				return err
			}

			return printRawJSON(body)
		},
	}

	cmd.AddCommand(statsCmd)

	return cmd
}

func apiGet(path string) ([]byte, error) {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(baseURL + path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return readAPIResponse(resp)
}

func apiPost(path string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: timeout}

	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return readAPIResponse(resp)
}

func apiDelete(path string) error {
	req, err := http.NewRequest(http.MethodDelete, baseURL+path, nil)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: timeout}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, err = readAPIResponse(resp)

	return err
}

func readAPIResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, body)
	}

	return body, nil
}

func printRawJSON(raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	printJSON(v)

	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render json: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
