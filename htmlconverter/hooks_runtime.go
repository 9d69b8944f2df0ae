package htmlconverter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rgonek/html-delta-converter/delta"
)

func (s *state) applyLinkHook(tag string, input LinkParseInput) (LinkParseOutput, bool, error) {
	if s.config.LinkHook == nil {
		return LinkParseOutput{}, false, nil
	}

	if err := s.checkContext(); err != nil {
		return LinkParseOutput{}, false, err
	}

	output, err := s.config.LinkHook(s.ctx, input)
	if err != nil {
		if errors.Is(err, ErrUnresolved) {
			if s.config.ResolutionMode == ResolutionStrict {
				return LinkParseOutput{}, false, fmt.Errorf("unresolved link reference %q: %w", input.Href, err)
			}
			s.addWarning(
				delta.WarningUnresolvedReference,
				tag,
				fmt.Sprintf("unresolved link reference %q; keeping original destination", input.Href),
			)
			return LinkParseOutput{}, false, nil
		}
		return LinkParseOutput{}, false, fmt.Errorf("link hook failed: %w", err)
	}

	if !output.Handled {
		return LinkParseOutput{}, false, nil
	}

	output.Href = strings.TrimSpace(output.Href)
	return output, true, nil
}

func (s *state) applyMediaHook(tag string, input MediaParseInput) (MediaParseOutput, bool, error) {
	if s.config.MediaHook == nil {
		return MediaParseOutput{}, false, nil
	}

	if err := s.checkContext(); err != nil {
		return MediaParseOutput{}, false, err
	}

	output, err := s.config.MediaHook(s.ctx, input)
	if err != nil {
		if errors.Is(err, ErrUnresolved) {
			if s.config.ResolutionMode == ResolutionStrict {
				return MediaParseOutput{}, false, fmt.Errorf("unresolved media reference %q: %w", input.Src, err)
			}
			s.addWarning(
				delta.WarningUnresolvedReference,
				tag,
				fmt.Sprintf("unresolved media reference %q; keeping original source", input.Src),
			)
			return MediaParseOutput{}, false, nil
		}
		return MediaParseOutput{}, false, fmt.Errorf("media hook failed: %w", err)
	}

	if !output.Handled {
		return MediaParseOutput{}, false, nil
	}

	output.Src = strings.TrimSpace(output.Src)
	return output, true, nil
}
