package watch

import (
	"regexp"
	"strings"

	"github.com/rileyhilliard/rrwatch/internal/errors"
	"github.com/rileyhilliard/rrwatch/internal/exec"
	"github.com/rileyhilliard/rrwatch/internal/state"
)

// Matcher reports whether a result belongs in the filtered history.
type Matcher func(exec.CommandResult) bool

// NewMatcher builds a matcher for keyword over the stream selected by mode.
// An empty keyword returns nil, meaning no filter. An invalid regular
// expression yields a matcher that rejects everything along with the
// compile error.
func NewMatcher(keyword string, regex bool, mode state.OutputMode) (Matcher, error) {
	if keyword == "" {
		return nil, nil
	}

	if !regex {
		return func(r exec.CommandResult) bool {
			return strings.Contains(r.OutputFor(mode), keyword)
		}, nil
	}

	re, err := regexp.Compile(keyword)
	if err != nil {
		return func(exec.CommandResult) bool { return false },
			errors.WrapWithCode(err, errors.ErrFilter,
				"Invalid filter pattern: "+keyword,
				"Check the regular expression syntax.")
	}
	return func(r exec.CommandResult) bool {
		return re.MatchString(r.OutputFor(mode))
	}, nil
}
