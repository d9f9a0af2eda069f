package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spiffcs/ghdump/config"
	"github.com/spiffcs/ghdump/internal/classify"
	"github.com/spiffcs/ghdump/internal/format"
	"github.com/spiffcs/ghdump/internal/ghclient"
	"github.com/spiffcs/ghdump/internal/log"
	"github.com/spiffcs/ghdump/internal/model"
	"github.com/spiffcs/ghdump/internal/output"
)

// itemFetcher is the subset of the GitHub client the dump loop needs.
// Tests substitute a fake.
type itemFetcher interface {
	GetIssue(ctx context.Context, repo model.Repo, number int) (*model.Issue, error)
	GetPullRequest(ctx context.Context, repo model.Repo, number int) (*model.PullRequest, error)
	GetCommit(ctx context.Context, repo model.Repo, sha string) (*model.Commit, error)
}

// runContext bundles everything the per-item loop needs.
type runContext struct {
	repo    model.Repo
	fetcher itemFetcher
	writer  *output.Writer
	policy  format.DiffPolicy
}

// addDumpFlags adds the dump flags to a command.
func addDumpFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Prefix, "output", "o", "", "Output filename prefix (default from config, then \"item\")")
	cmd.Flags().StringVarP(&opts.Token, "token", "t", "", "GitHub token (falls back to GITHUB_TOKEN)")
	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "", "Parent directory for the timestamped output directory")
	cmd.Flags().IntVar(&opts.MaxDiffLines, "max-diff-lines", 0, "Skip per-file diffs larger than this many changed lines (default 500)")
	cmd.Flags().BoolVar(&opts.Public, "public", false, "Force unauthenticated access to public repositories (ignores any token)")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")
}

func runDump(cmd *cobra.Command, args []string, opts *Options) error {
	log.Initialize(opts.Verbosity, os.Stderr)
	ctx := cmd.Context()

	run, err := setupRun(ctx, args[0], opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Writing output to %s\n", run.writer.Dir)
	return processItems(ctx, run, args[1:], cmd.OutOrStdout())
}

// setupRun resolves config, credentials, the repository, and the output
// directory. Any failure here is fatal: nothing has been processed yet.
func setupRun(ctx context.Context, repoName string, opts *Options) (*runContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	token := resolveToken(opts, cfg)
	if token == "" && !opts.Public {
		return nil, fmt.Errorf("GitHub token not configured. Set the GITHUB_TOKEN environment variable, pass --token, or use --public for public repositories")
	}

	client, err := ghclient.NewClient(token)
	if err != nil {
		return nil, err
	}

	if token != "" {
		login, err := client.GetAuthenticatedUser(ctx)
		if err != nil {
			return nil, setupHint(repoName, err)
		}
		log.Info("authenticated", "user", login)
	}

	repo, err := client.GetRepository(ctx, repoName)
	if err != nil {
		return nil, setupHint(repoName, err)
	}
	log.Info("resolved repository", "repo", repo.FullName)

	prefix := opts.Prefix
	if prefix == "" {
		prefix = cfg.GetPrefix()
	}

	baseDir := opts.OutputDir
	if baseDir == "" {
		baseDir = cfg.OutputDir
	}

	writer, err := output.NewWriter(baseDir, prefix, time.Now())
	if err != nil {
		return nil, err
	}

	maxDiffLines := opts.MaxDiffLines
	if maxDiffLines == 0 {
		maxDiffLines = cfg.GetMaxDiffLines()
	}

	return &runContext{
		repo:    repo,
		fetcher: client,
		writer:  writer,
		policy:  format.NewDiffPolicy(maxDiffLines),
	}, nil
}

// resolveToken picks the credential for this run. --public forces
// unauthenticated mode: any flag or environment token is ignored, so a
// stale token can never fail a run against a public repository.
func resolveToken(opts *Options, cfg *config.Config) string {
	if opts.Public {
		return ""
	}
	if opts.Token != "" {
		return opts.Token
	}
	return cfg.GetGitHubToken()
}

// setupHint wraps a repository resolution failure with a remediation hint.
func setupHint(repoName string, err error) error {
	switch {
	case ghclient.IsAuthError(err):
		return fmt.Errorf("authentication failed: %w\nCheck that your GitHub token is valid and not expired", err)
	case ghclient.IsNotFound(err):
		return fmt.Errorf("repository %s not found: %w\nCheck the owner/repo spelling; private repositories need a token with repo scope", repoName, err)
	case ghclient.IsRateLimited(err):
		return fmt.Errorf("GitHub API rate limit exceeded: %w\nWait for the limit to reset or authenticate with a token (run 'ghdump ratelimit status')", err)
	default:
		return err
	}
}

// processItems fetches, formats, and writes each requested item. A failed
// item is reported and skipped; the loop always continues.
func processItems(ctx context.Context, run *runContext, tokens []string, w io.Writer) error {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	for _, token := range tokens {
		path, err := processItem(ctx, run, token)
		if err != nil {
			if ghclient.IsNotFound(err) {
				fmt.Fprintf(w, "%s %s: not found in %s, skipping\n", yellow("skip"), token, run.repo.FullName)
			} else {
				fmt.Fprintf(w, "%s %s: %v\n", yellow("skip"), token, err)
			}
			log.Warn("item failed", "item", token, "error", err)
			continue
		}
		fmt.Fprintf(w, "%s %s -> %s\n", green("ok"), token, path)
	}

	return nil
}

// processItem classifies one item token, fetches the remaining data,
// renders the document, and writes it to disk.
func processItem(ctx context.Context, run *runContext, token string) (string, error) {
	cls, err := classify.Classify(ctx, run.fetcher, run.repo, token)
	if err != nil {
		return "", err
	}
	log.Debug("classified item", "item", token, "kind", cls.Kind)

	var doc string
	switch cls.Kind {
	case model.KindPullRequest:
		pr, err := run.fetcher.GetPullRequest(ctx, run.repo, cls.Number)
		if err != nil {
			return "", err
		}
		doc = format.PullRequest(run.repo, pr, run.policy)
	case model.KindIssue:
		doc = format.Issue(run.repo, cls.Issue)
	case model.KindCommit:
		commit, err := run.fetcher.GetCommit(ctx, run.repo, cls.SHA)
		if err != nil {
			return "", err
		}
		doc = format.Commit(run.repo, commit, run.policy)
	default:
		return "", fmt.Errorf("unknown item kind %q", cls.Kind)
	}

	return run.writer.Write(cls.Kind, cls.FileID(), doc)
}
