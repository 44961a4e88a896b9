// FILE: configfile/section.go
package configfile

import (
	"strings"
)

// TagValue is a single tag/value pair within a section. The value is the raw
// string form; typed interpretation is left to value coders.
type TagValue struct {
	Tag   string
	Value string
}

// entry is one slot in a section body, holding either a tag/value pair or a
// subsection. Keeping both in one ordered list preserves the declaration
// order of a parsed file across a save.
type entry struct {
	tv  *TagValue
	sub *Section
}

// Section is a named node in the configuration tree. It owns an ordered list
// of tag/value pairs and subsections and tracks whether it has unsaved
// changes.
type Section struct {
	parent  *Section
	name    string
	entries []entry
	edited  bool
}

// NewSection creates a standalone root section.
func NewSection() *Section {
	return &Section{}
}

func newSection(parent *Section, name string) *Section {
	return &Section{parent: parent, name: name}
}

// Name returns the section's name. The root section's name is empty.
func (s *Section) Name() string {
	return s.name
}

// Parent returns the parent section, or nil for the root.
func (s *Section) Parent() *Section {
	return s.parent
}

// Root returns the root of the tree containing s.
func (s *Section) Root() *Section {
	r := s
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Path returns the absolute path from the root to this section.
func (s *Section) Path() string {
	if s.parent == nil {
		return "/"
	}
	parentPath := s.parent.Path()
	if parentPath == "/" {
		return parentPath + s.name
	}
	return parentPath + "/" + s.name
}

// Subsections returns the direct subsections in declaration order.
func (s *Section) Subsections() []*Section {
	var subs []*Section
	for _, e := range s.entries {
		if e.sub != nil {
			subs = append(subs, e.sub)
		}
	}
	return subs
}

// Tags returns the tag/value pairs of this section in declaration order.
func (s *Section) Tags() []TagValue {
	var tags []TagValue
	for _, e := range s.entries {
		if e.tv != nil {
			tags = append(tags, *e.tv)
		}
	}
	return tags
}

// findSubsection returns the first direct subsection with the given name,
// or nil. Duplicate sibling names are legal; only the first is reachable.
func (s *Section) findSubsection(name string) *Section {
	for _, e := range s.entries {
		if e.sub != nil && e.sub.name == name {
			return e.sub
		}
	}
	return nil
}

func (s *Section) findTag(tag string) *TagValue {
	for _, e := range s.entries {
		if e.tv != nil && e.tv.Tag == tag {
			return e.tv
		}
	}
	return nil
}

// markEdited sets the dirty flag on this section and every ancestor.
func (s *Section) markEdited() {
	for cur := s; cur != nil; cur = cur.parent {
		cur.edited = true
	}
}

// AddSubsection appends a new empty subsection with the given name. It does
// not check for name collisions among siblings.
func (s *Section) AddSubsection(name string) *Section {
	sub := newSection(s, name)
	s.entries = append(s.entries, entry{sub: sub})
	s.markEdited()
	return sub
}

// AddTagValue stores a value under the given tag. If the tag already exists
// in this section its value is overwritten in place; otherwise the pair is
// appended at the end. The section and its ancestors are marked dirty.
func (s *Section) AddTagValue(tag, value string) {
	if tv := s.findTag(tag); tv != nil {
		tv.Value = value
	} else {
		s.entries = append(s.entries, entry{tv: &TagValue{Tag: tag, Value: value}})
	}
	s.markEdited()
}

// RemoveTag removes the given tag from the section. It does nothing if the
// tag does not exist.
func (s *Section) RemoveTag(tag string) {
	for i, e := range s.entries {
		if e.tv != nil && e.tv.Tag == tag {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.markEdited()
			return
		}
	}
}

// IsEdited reports whether this section or any of its subsections has been
// changed since the last save.
func (s *Section) IsEdited() bool {
	if s.edited {
		return true
	}
	for _, e := range s.entries {
		if e.sub != nil && e.sub.IsEdited() {
			return true
		}
	}
	return false
}

// ClearEditFlag clears the dirty flag on this section and all subsections,
// called after a successful save.
func (s *Section) ClearEditFlag() {
	s.edited = false
	for _, e := range s.entries {
		if e.sub != nil {
			e.sub.ClearEditFlag()
		}
	}
}

// splitPath breaks a path into its components, dropping empty ones so that
// leading, trailing, and doubled slashes are harmless.
func splitPath(path string) []string {
	var components []string
	for _, c := range strings.Split(path, "/") {
		if c != "" && c != "." {
			components = append(components, c)
		}
	}
	return components
}

// notFoundPath builds the absolute path reported when resolution fails at
// base with the given components still unconsumed.
func notFoundPath(base *Section, remaining []string) string {
	p := base.Path()
	if len(remaining) == 0 {
		return p
	}
	if p == "/" {
		return p + strings.Join(remaining, "/")
	}
	return p + "/" + strings.Join(remaining, "/")
}

// Resolve follows a relative path from this section and returns the target
// section. A leading '/' resolves from the root, '..' moves to the parent.
// Resolution is strict: a missing component yields a SectionNotFoundError
// carrying the absolute path that could not be resolved.
func (s *Section) Resolve(path string) (*Section, error) {
	cur := s
	if strings.HasPrefix(path, "/") {
		cur = s.Root()
	}
	components := splitPath(path)
	for i, c := range components {
		switch c {
		case "..":
			if cur.parent != nil {
				cur = cur.parent
			}
		default:
			sub := cur.findSubsection(c)
			if sub == nil {
				return nil, &SectionNotFoundError{Path: notFoundPath(cur, components[i:])}
			}
			cur = sub
		}
	}
	return cur, nil
}

// ResolveOrCreate follows a relative path from this section, creating any
// missing sections along the way. It never fails.
func (s *Section) ResolveOrCreate(path string) *Section {
	cur := s
	if strings.HasPrefix(path, "/") {
		cur = s.Root()
	}
	for _, c := range splitPath(path) {
		switch c {
		case "..":
			if cur.parent != nil {
				cur = cur.parent
			}
		default:
			sub := cur.findSubsection(c)
			if sub == nil {
				sub = cur.AddSubsection(c)
			}
			cur = sub
		}
	}
	return cur
}

// splitTagPath separates a tag path into its section part and the final
// component naming the tag.
func splitTagPath(path string) (sectionPath, tag string) {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[:i+1], path[i+1:]
	}
	return "", path
}

// RetrieveTagValue looks up the value stored under the given tag path.
// All but the last path component name sections; resolution is strict and
// nothing is created. A missing tag yields a TagNotFoundError carrying the
// tag name and the absolute path of the section searched.
func (s *Section) RetrieveTagValue(path string) (string, error) {
	sectionPath, tag := splitTagPath(path)
	sec, err := s.Resolve(sectionPath)
	if err != nil {
		return "", err
	}
	tv := sec.findTag(tag)
	if tv == nil {
		return "", &TagNotFoundError{Tag: tag, SectionPath: sec.Path()}
	}
	return tv.Value, nil
}

// RetrieveTagValueDefault looks up the value stored under the given tag path
// and returns defaultValue if the section or tag does not exist. The tree is
// never modified.
func (s *Section) RetrieveTagValueDefault(path, defaultValue string) string {
	value, err := s.RetrieveTagValue(path)
	if err != nil {
		return defaultValue
	}
	return value
}

// UpdateTagValue looks up the value stored under the given tag path,
// creating missing sections along the way. If the tag itself is missing,
// defaultValue is stored under it and returned.
func (s *Section) UpdateTagValue(path, defaultValue string) string {
	sectionPath, tag := splitTagPath(path)
	sec := s.ResolveOrCreate(sectionPath)
	if tv := sec.findTag(tag); tv != nil {
		return tv.Value
	}
	sec.AddTagValue(tag, defaultValue)
	return defaultValue
}

// StoreTagValue stores a value under the given tag path, creating missing
// sections and the tag itself as needed.
func (s *Section) StoreTagValue(path, value string) {
	sectionPath, tag := splitTagPath(path)
	s.ResolveOrCreate(sectionPath).AddTagValue(tag, value)
}

// Equal reports structural equality: same names, same tag order and values,
// same subsection order, recursively. Dirty flags and interleaving of tags
// with subsections are not compared.
func (s *Section) Equal(o *Section) bool {
	if s.name != o.name {
		return false
	}
	sTags, oTags := s.Tags(), o.Tags()
	if len(sTags) != len(oTags) {
		return false
	}
	for i := range sTags {
		if sTags[i] != oTags[i] {
			return false
		}
	}
	sSubs, oSubs := s.Subsections(), o.Subsections()
	if len(sSubs) != len(oSubs) {
		return false
	}
	for i := range sSubs {
		if !sSubs[i].Equal(oSubs[i]) {
			return false
		}
	}
	return true
}
