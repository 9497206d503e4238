// Package pipeline orchestrates the complete verification flow: input
// routing, claim extraction, planning, evidence gathering, consensus.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/factguard/factguard/internal/agent"
	"github.com/factguard/factguard/internal/cache"
	"github.com/factguard/factguard/internal/extract"
	"github.com/factguard/factguard/internal/intent"
	"github.com/factguard/factguard/internal/model"
	"github.com/factguard/factguard/internal/respond"
	"github.com/factguard/factguard/internal/route"
	"github.com/factguard/factguard/internal/sources"
	"github.com/factguard/factguard/internal/validate"
	"github.com/factguard/factguard/internal/verdict"
	"github.com/factguard/factguard/internal/worker"
)

// Verifier runs the complete verification flow for one input
type Verifier struct {
	config    *model.Config
	extractor *extract.Extractor
	gate      *validate.Gate
	evaluator *intent.Evaluator
	planner   *agent.Planner
	consensus *agent.Consensus
	fetcher   *Fetcher
	market    *sources.AlphaVantage
	news      *sources.NewsAPI
	verbose   bool
}

// NewVerifier creates a verifier from the given configuration. The
// cache may be nil; evidence lookups then go uncached.
func NewVerifier(cfg *model.Config, c cache.Cache) *Verifier {
	var provider agent.Provider
	if cfg.LLM.Provider != "" {
		p, err := agent.NewProvider(agent.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize reasoning provider: %v\n", err)
		} else {
			provider = p
		}
	}

	limiter := worker.NewLimiter(cfg.Concurrency.RatePerSecond, cfg.Concurrency.RateBurst)
	parser := route.NewParser(cfg.Lexicon)

	return &Verifier{
		config:    cfg,
		extractor: extract.NewExtractor(cfg.Lexicon, cfg.Extraction),
		gate:      validate.NewGate(cfg.Lexicon),
		evaluator: intent.NewEvaluator(cfg.Lexicon, cfg.Extraction),
		planner:   agent.NewPlanner(provider, parser, cfg.Output.Verbose),
		consensus: agent.NewConsensus(provider),
		fetcher: NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes,
			cfg.HTTP.InsecureTLS, cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
		market: sources.NewAlphaVantage(cfg.Sources.AlphaVantageKey, cfg.Sources.AlphaVantageBaseURL,
			cfg.HTTP.Timeout, c, limiter),
		news: sources.NewNewsAPI(cfg.Sources.NewsAPIKey, cfg.Sources.NewsAPIBaseURL,
			cfg.HTTP.Timeout, cfg.Sources.NewsWindowDays, cfg.Sources.MaxArticles, c, limiter),
		verbose: cfg.Output.Verbose,
	}
}

// Verify routes an input by shape: URLs are fetched, everything else
// is treated as claim text
func (v *Verifier) Verify(ctx context.Context, input string) (*model.VerificationReport, error) {
	input = strings.TrimSpace(input)
	lower := strings.ToLower(input)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "www.") {
		return v.VerifyURL(ctx, input)
	}
	return v.VerifyText(ctx, input)
}

// VerifyText extracts claims from free text and verifies each one
func (v *Verifier) VerifyText(ctx context.Context, text string) (*model.VerificationReport, error) {
	report := v.newReport(text, "text")
	defer report.finish()

	text = strings.TrimSpace(text)
	if len(text) < 10 {
		report.Message = respond.TooShort()
		return report.VerificationReport, nil
	}

	claims := v.extractor.Texts(text)
	if len(claims) == 0 {
		// Explain the rejection when the whole input fails the gate;
		// otherwise nothing factual was found
		if admission := v.gate.Check(text); !admission.OK {
			report.Message = respond.ForRejection(admission.Reason)
		} else {
			report.Message = respond.NoClaims()
		}
		return report.VerificationReport, nil
	}

	return v.verifyClaims(ctx, report, claims)
}

// VerifyURL fetches an article and verifies the claims in its text
func (v *Verifier) VerifyURL(ctx context.Context, rawURL string) (*model.VerificationReport, error) {
	report := v.newReport(rawURL, "url")
	defer report.finish()

	rawURL = strings.TrimSpace(rawURL)
	if strings.HasPrefix(strings.ToLower(rawURL), "www.") {
		rawURL = "https://" + rawURL
	}

	kind, host, ok := respond.ClassifyURL(rawURL)
	if !ok {
		report.Message = respond.ForURLIssue(kind, host)
		return report.VerificationReport, nil
	}

	result, err := v.fetcher.FetchWithRetry(ctx, rawURL)
	if err != nil {
		issueKind := respond.URLIssueBroken
		if result != nil && (result.StatusCode == 401 || result.StatusCode == 403) {
			issueKind = respond.URLIssueLoginRequired
		}
		report.Message = respond.ForURLIssue(issueKind, host)
		return report.VerificationReport, nil
	}

	article, err := extract.ParseArticle(result.HTML)
	if err != nil || len(article.Body) < 10 {
		report.Message = respond.ForURLIssue(respond.URLIssueBroken, host)
		return report.VerificationReport, nil
	}

	report.Source = result.FinalURL
	report.Title = article.Title

	claims := v.extractor.Texts(article.Body)
	if len(claims) == 0 {
		report.Message = respond.NoClaims()
		return report.VerificationReport, nil
	}

	return v.verifyClaims(ctx, report, claims)
}

// VerifyImageText classifies OCR text and, for newsworthy content,
// verifies the reconstructed claims. Reconstructed claims bypass the
// completeness gate: image capture is noisier than typed text.
func (v *Verifier) VerifyImageText(ctx context.Context, ocrText string) (*model.VerificationReport, error) {
	report := v.newReport(ocrText, "image")
	defer report.finish()

	evaluation := v.evaluator.Evaluate(ocrText)
	if !evaluation.Intent.Verifiable() {
		report.Message = respond.ForIntent(evaluation.Intent)
		return report.VerificationReport, nil
	}

	if len(evaluation.Claims) == 0 {
		report.Message = respond.NoClaims()
		return report.VerificationReport, nil
	}

	return v.verifyClaims(ctx, report, evaluation.Claims)
}

// verifyClaims runs plan, gather, conclude for each claim
func (v *Verifier) verifyClaims(ctx context.Context, report *reportBuilder, claims []string) (*model.VerificationReport, error) {
	for _, claim := range claims {
		if v.verbose {
			fmt.Fprintf(os.Stderr, "Verifying: %s\n", claim)
		}

		decision := v.planner.Plan(ctx, claim)
		evidence := v.gather(ctx, claim, decision)

		result, err := v.consensus.Conclude(ctx, claim, evidence)
		if err != nil && v.verbose {
			fmt.Fprintf(os.Stderr, "Consensus degraded for claim: %v\n", err)
		}

		report.Claims = append(report.Claims, model.ClaimResult{
			Claim:    claim,
			Routing:  decision,
			Evidence: evidence,
			Verdict:  result,
			Rendered: verdict.Format(claim, result),
		})
	}

	return report.VerificationReport, nil
}

// gather collects evidence from every agent the routing decision names
func (v *Verifier) gather(ctx context.Context, claim string, decision model.RoutingDecision) []model.EvidenceSource {
	var evidence []model.EvidenceSource

	for _, agentName := range decision.RequiredAgents {
		switch agentName {
		case model.AgentFinance:
			if !v.market.Available() {
				continue
			}
			ev, err := v.market.Search(ctx, claim)
			if err != nil {
				if v.verbose {
					fmt.Fprintf(os.Stderr, "Market data unavailable: %v\n", err)
				}
				continue
			}
			evidence = append(evidence, *ev)

		case model.AgentNews:
			if !v.news.Available() {
				continue
			}
			articles, err := v.news.Search(ctx, claim)
			if err != nil {
				if v.verbose {
					fmt.Fprintf(os.Stderr, "News search failed: %v\n", err)
				}
				continue
			}
			evidence = append(evidence, articles...)
		}
	}

	return evidence
}

// reportBuilder tracks timing around a report under construction
type reportBuilder struct {
	*model.VerificationReport
}

func (v *Verifier) newReport(input, inputType string) *reportBuilder {
	return &reportBuilder{
		VerificationReport: &model.VerificationReport{
			Input:     input,
			InputType: inputType,
			StartedAt: time.Now().UTC(),
		},
	}
}

func (r *reportBuilder) finish() {
	r.Duration = time.Since(r.StartedAt)
}
