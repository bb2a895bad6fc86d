package catalog

import "strings"

// Search returns the conversation logs matching keyword. A recognized
// backend value narrows the scan to that tree; anything else scans Claude
// then Codex and concatenates the two result sets without re-sorting across
// backends. An empty keyword matches everything.
func (c *Catalog) Search(backend Backend, keyword string) ([]ConversationMeta, error) {
	var targets []Backend
	switch backend {
	case BackendClaude, BackendCodex:
		targets = []Backend{backend}
	default:
		targets = []Backend{BackendClaude, BackendCodex}
	}

	var all []ConversationMeta
	for _, b := range targets {
		metas, err := c.List(b)
		if err != nil {
			return nil, err
		}
		all = append(all, metas...)
	}

	if keyword == "" {
		return all, nil
	}

	needle := strings.ToLower(keyword)
	matched := make([]ConversationMeta, 0, len(all))
	for _, meta := range all {
		if meta.matches(needle) {
			matched = append(matched, meta)
		}
	}

	return matched, nil
}

// matches tests a lowercased keyword against the id, container name, and
// session id. Absent optional fields simply don't match.
func (m ConversationMeta) matches(needle string) bool {
	if strings.Contains(strings.ToLower(m.ID), needle) {
		return true
	}
	if m.ContainerName != "" && strings.Contains(strings.ToLower(m.ContainerName), needle) {
		return true
	}
	return m.SessionID != "" && strings.Contains(strings.ToLower(m.SessionID), needle)
}
