package agent

import (
	"context"
	"fmt"

	"github.com/krizek/networth"
	"github.com/krizek/networth/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and keep context of your previous questions.

			The user is here primarily to understand his net worth: his bank
			accounts, savings interest, investments and loans. Check the
			Analyst first to learn what he owns before answering.

			Devise a plan of questions to ask each expert and come up with the
			best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor returns an expert grounding answers with Google Search.
func NewAdvisor() *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is a financial advisor,
		well aware of banking products, savings rates, market funds and the
		latest financial news. Ask the Advisor whenever you need recent or
		grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a financial advisor. You can search and find anything
			related to banks, savings accounts, interest rates, funds and
			markets. Leverage Google Search to ground your assertions, and
			relate the latest news to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of the user's data files in
// dir. Its tools compute and render the metrics.
func NewAnalyst(dir string) *Expert {
	lib := analystTools(dir)
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He reads the user's financial data
		and computes the relevant figures: net worth, account balances, zoned
		savings interest, investment gains and loans.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's financial records.
				Use the available tools to compute the figures about the
				user's wealth:
				  - the net worth summary
				  - accounts and their interest
				  - investment holdings
				  - loans
				Other experts might ask you questions about the user's
				finances, pardon their approximative language and figure out
				what they meant. Figures come back as markdown tables, quote
				them faithfully.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements Function with plain values.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// report wraps a snapshot rendering into a Func with no parameters.
func report(dir, name, description string, render func(*networth.Snapshot) string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
			snap, err := networth.LoadSnapshot(dir)
			if err != nil {
				fresp.Response["error"] = fmt.Sprintf("could not load data: %v", err)
				return fresp
			}
			fresp.Response["output"] = render(snap)
			return fresp
		},
	}
}

func analystTools(dir string) []Function {
	summary := report(dir, "Summary",
		`Summary computes the user's net worth: total account balance,
		investment value, outstanding loan principal, expected yearly
		interest and projected dividends, all in the reporting currency.`,
		func(s *networth.Snapshot) string { return renderer.SummaryMarkdown(s.Summary()) })

	accounts := report(dir, "Accounts",
		`Accounts lists every bank account with its balance, interest rate
		and expected yearly interest, and the aggregate account metrics.`,
		renderer.AccountsMarkdown)

	investments := report(dir, "Investments",
		`Investments lists every holding with its cost, market value, gain
		and projected dividends, and the aggregate investment metrics.`,
		func(s *networth.Snapshot) string { return renderer.InvestmentsMarkdown(s.Holdings) })

	loans := report(dir, "Loans",
		`Loans lists every liability with its principal, monthly payment and
		rate, and the aggregate loan metrics.`,
		func(s *networth.Snapshot) string { return renderer.LoansMarkdown(s.Loans, s.Rates) })

	zones := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Zones",
			Description: `Zones details how each rate zone of a zoned savings
			account contributes to its yearly interest.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"account": {
						Type:        genai.TypeString,
						Description: "The id of the zoned account.",
					},
				},
				Required: []string{"account"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted breakdown per rate zone.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: "Zones", Response: map[string]any{}}
			name, ok := args["account"].(string)
			if !ok {
				fresp.Response["error"] = fmt.Sprintf("argument 'account' is not a string but %T", args["account"])
				return fresp
			}
			snap, err := networth.LoadSnapshot(dir)
			if err != nil {
				fresp.Response["error"] = fmt.Sprintf("could not load data: %v", err)
				return fresp
			}
			for _, a := range snap.Accounts {
				if a.ID == name {
					fresp.Response["output"] = renderer.ZonesMarkdown(a, snap.Zones[a.ID])
					return fresp
				}
			}
			fresp.Response["error"] = fmt.Sprintf("no account %q", name)
			return fresp
		},
	}

	return []Function{summary, accounts, investments, loans, zones}
}
