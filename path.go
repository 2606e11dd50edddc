package uri

import "strings"

// parsePath splits a path string on '/' boundaries into a segment list and
// decodes each segment against PCHAR_NOT_PCT_ENCODED.
//
// "/" produces one empty segment (the absolute root). "" produces no
// segments. Any other input splits so that a leading '/' yields a leading
// empty segment, repeated '/' yield empty interior segments, and a
// trailing '/' yields a trailing empty segment.
func parsePath(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	if raw == "/" {
		return []string{""}, nil
	}

	rawSegments := strings.Split(raw, "/")
	segments := make([]string, len(rawSegments))
	for i, seg := range rawSegments {
		decoded, err := decodeElement(seg, pcharNotPctEncodedSet, ErrInvalidPath)
		if err != nil {
			return nil, err
		}
		segments[i] = decoded
	}
	return segments, nil
}

// removeDotSegments implements the §5.2.4 dot-segment-removal algorithm
// over a segment list, preserving absoluteness (a leading empty segment
// stays first).
func removeDotSegments(segments []string) []string {
	if len(segments) == 0 {
		return segments
	}

	absolute := segments[0] == ""
	out := make([]string, 0, len(segments))
	if absolute {
		out = append(out, "")
	}

	endedAtBoundary := false
	for i, seg := range segments {
		if absolute && i == 0 {
			continue // the leading empty marker was already emitted
		}
		switch seg {
		case ".":
			endedAtBoundary = true
		case "..":
			// Never remove the leading empty segment of an absolute path.
			if len(out) > 0 && !(absolute && len(out) == 1) {
				out = out[:len(out)-1]
			}
			endedAtBoundary = true
		default:
			// A final empty segment right after "." or ".." is the trailing
			// slash that the boundary rule below already restores; appending
			// it here would double the slash when out ends in "".
			if seg == "" && i == len(segments)-1 && i > 0 &&
				(segments[i-1] == "." || segments[i-1] == "..") {
				continue
			}
			out = append(out, seg)
			endedAtBoundary = seg == ""
		}
	}

	if endedAtBoundary && (len(out) == 0 || out[len(out)-1] != "") {
		out = append(out, "")
	}

	return out
}

// NormalizePath replaces u's path with its remove_dot_segments form.
func (u *URI) NormalizePath() {
	u.path = removeDotSegments(u.path)
}

// mergePath implements §5.2.2's T.merge: if base has at least two
// segments, drop base's last segment, then append ref's segments.
func mergePath(base, ref []string) []string {
	merged := base
	if len(base) >= 2 {
		merged = base[:len(base)-1]
	}
	out := make([]string, 0, len(merged)+len(ref))
	out = append(out, merged...)
	out = append(out, ref...)
	return out
}
