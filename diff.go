package gosugg

// Entry is a corpus snapshot record used for diffing: one English string and
// its translation, if any.
type Entry struct {
	English    string
	Translated string
}

// CorpusDiff describes how a corpus changed between two snapshots.
type CorpusDiff struct {
	// Added contains entries whose English string is new.
	Added []Entry

	// Removed contains entries whose English string disappeared.
	Removed []Entry

	// Retranslated contains entries whose English string is unchanged but
	// whose translation changed (including gaining or losing one).
	Retranslated []Entry

	// Unchanged contains entries identical in both snapshots.
	Unchanged []Entry
}

// HasChanges reports whether there are any differences.
func (d *CorpusDiff) HasChanges() bool {
	return len(d.Added) > 0 || len(d.Removed) > 0 || len(d.Retranslated) > 0
}

// AffectedGroupKeys returns the serialized group keys touched by the diff.
// Only the groups behind these keys need their templates rebuilt.
func (d *CorpusDiff) AffectedGroupKeys() map[string]bool {
	keys := make(map[string]bool)
	for _, set := range [][]Entry{d.Added, d.Removed, d.Retranslated} {
		for _, e := range set {
			keys[BuildGroupKey(e.English).String()] = true
		}
	}
	return keys
}

// DiffCorpus compares two corpus snapshots keyed by the hash of the English
// string. This supports incremental refresh: only groups containing changed
// entries need new templates.
func DiffCorpus(old, new []Entry) *CorpusDiff {
	diff := &CorpusDiff{}

	oldByHash := make(map[string]Entry, len(old))
	for _, e := range old {
		oldByHash[HashText(e.English)] = e
	}
	newByHash := make(map[string]Entry, len(new))
	for _, e := range new {
		newByHash[HashText(e.English)] = e
	}

	for hash, oldEntry := range oldByHash {
		newEntry, exists := newByHash[hash]
		switch {
		case !exists:
			diff.Removed = append(diff.Removed, oldEntry)
		case newEntry.Translated != oldEntry.Translated:
			diff.Retranslated = append(diff.Retranslated, newEntry)
		default:
			diff.Unchanged = append(diff.Unchanged, newEntry)
		}
	}
	for hash, newEntry := range newByHash {
		if _, exists := oldByHash[hash]; !exists {
			diff.Added = append(diff.Added, newEntry)
		}
	}

	return diff
}

// snapshot captures the engine's current corpus as diffable entries.
func (e *Engine[T]) snapshot() []Entry {
	var entries []Entry
	for _, g := range e.groups {
		for _, item := range g.Items {
			entries = append(entries, Entry{
				English:    e.getEnglish(item),
				Translated: e.getTranslated(item),
			})
		}
	}
	return entries
}

// Refresh rebuilds the engine's group map for an updated corpus, reusing
// templates of groups the update did not touch. It returns the diff that
// drove the rebuild.
func (e *Engine[T]) Refresh(items []T) *CorpusDiff {
	newEntries := make([]Entry, len(items))
	for i, item := range items {
		newEntries[i] = Entry{
			English:    e.getEnglish(item),
			Translated: e.getTranslated(item),
		}
	}
	diff := DiffCorpus(e.snapshot(), newEntries)
	if !diff.HasChanges() {
		return diff
	}

	affected := diff.AffectedGroupKeys()
	old := e.groups
	e.groups = e.buildGroupsPartial(items, old, affected)
	return diff
}

// buildGroupsPartial re-buckets all items but derives new templates only for
// the affected groups, carrying unaffected templates over from the previous
// map.
func (e *Engine[T]) buildGroupsPartial(items []T, old map[string]*SuggestionGroup[T], affected map[string]bool) map[string]*SuggestionGroup[T] {
	groups := e.groupItems(items)
	for key, g := range groups {
		if prev, ok := old[key]; ok && !affected[key] {
			g.Template = prev.Template
			g.Err = prev.Err
			continue
		}
		e.buildTemplate(g)
	}
	return groups
}
