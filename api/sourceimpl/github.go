package sourceimpl

import (
	"fmt"
	"strings"
	"time"

	"github.com/morikuni/failure/v2"
	"golang.org/x/sync/errgroup"

	"github.com/mcpup/mcpup/api/source"
	"github.com/mcpup/mcpup/log"
)

// defaultBranches are tried in order when the source does not name a branch
var defaultBranches = []string{"main", "master"}

// repoRef identifies a location inside a GitHub repository
type repoRef struct {
	Owner   string
	Repo    string
	Branch  string // empty means "try the default branches"
	Subpath string
}

// parseRepoRef parses a GitHub repository URL or owner/repo shorthand.
// Supported forms:
//
//	https://github.com/owner/repo
//	https://github.com/owner/repo/tree/branch/sub/dir
//	owner/repo
func parseRepoRef(value string) (repoRef, error) {
	v := strings.TrimSpace(value)
	if strings.Contains(v, "://") || strings.HasPrefix(v, "git@") || strings.HasSuffix(v, ".git") {
		v = cleanupRepoURL(v)
	}
	v = strings.TrimSuffix(v, "/")

	pos := strings.Index(v, "github.com/")
	if pos != -1 {
		v = v[pos+len("github.com/"):]
	} else if strings.HasPrefix(v, "https://") || strings.HasPrefix(v, "http://") {
		return repoRef{}, failure.New(ErrInvalidSource,
			failure.Message("Not a GitHub repository URL"),
			failure.Context{"source": value},
		)
	}

	parts := strings.Split(v, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return repoRef{}, failure.New(ErrInvalidSource,
			failure.Message("Invalid GitHub repository reference"),
			failure.Context{"source": value},
		)
	}

	ref := repoRef{Owner: parts[0], Repo: parts[1]}

	// Strip query parameters or fragments left on the repo segment
	if idx := strings.IndexAny(ref.Repo, "?#"); idx != -1 {
		ref.Repo = ref.Repo[:idx]
	}
	if ref.Repo == "" {
		return repoRef{}, failure.New(ErrInvalidSource,
			failure.Message("Invalid GitHub repository reference"),
			failure.Context{"source": value},
		)
	}

	if len(parts) >= 4 && parts[2] == "tree" {
		ref.Branch = parts[3]
		if len(parts) > 4 {
			ref.Subpath = strings.Join(parts[4:], "/")
		}
	}

	return ref, nil
}

// readmeCandidates returns raw README URLs in priority order
func (r repoRef) readmeCandidates() []string {
	branches := defaultBranches
	if r.Branch != "" {
		branches = []string{r.Branch}
	}

	candidates := make([]string, 0, len(branches))
	for _, branch := range branches {
		p := branch
		if r.Subpath != "" {
			p = branch + "/" + r.Subpath
		}
		candidates = append(candidates, fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s/README.md", r.Owner, r.Repo, p))
	}
	return candidates
}

// GitHubFetcher resolves a GitHub repository reference to its README text
type GitHubFetcher struct{}

// Fetch probes the candidate raw README URLs concurrently. Each probe is
// independent and side-effect-free; the first candidate in priority order
// that succeeds wins and the others are discarded.
func (f *GitHubFetcher) Fetch(value string) (source.Document, error) {
	ref, err := parseRepoRef(value)
	if err != nil {
		return source.Document{}, err
	}

	candidates := ref.readmeCandidates()
	texts := make([]string, len(candidates))
	errs := make([]error, len(candidates))

	var g errgroup.Group
	for i, u := range candidates {
		g.Go(func() error {
			texts[i], errs[i] = httpGetText(u)
			return nil
		})
	}
	_ = g.Wait()

	for i, u := range candidates {
		if errs[i] == nil {
			log.Debug("resolved README", "url", u)
			return source.Document{
				Ref:         source.Reference{Kind: source.KindGitHubRepo, Value: value},
				Text:        texts[i],
				ResolvedURL: u,
				FetchedAt:   time.Now(),
			}, nil
		}
	}

	return source.Document{}, failure.New(ErrReadmeNotFound,
		failure.Message(fmt.Sprintf("No README found for %s/%s on any candidate branch", ref.Owner, ref.Repo)),
		failure.Context{
			"owner": ref.Owner,
			"repo":  ref.Repo,
			"tried": strings.Join(candidates, ", "),
		},
	)
}

func (f *GitHubFetcher) BrowserURL(value string) string {
	ref, err := parseRepoRef(value)
	if err != nil {
		return ""
	}
	u := fmt.Sprintf("https://github.com/%s/%s", ref.Owner, ref.Repo)
	if ref.Branch != "" {
		u += "/tree/" + ref.Branch
		if ref.Subpath != "" {
			u += "/" + ref.Subpath
		}
	}
	return u
}

func (f *GitHubFetcher) Kind() source.Kind {
	return source.KindGitHubRepo
}
