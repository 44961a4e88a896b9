// FILE: configfile/merge.go
package configfile

import "strings"

// MergeSection overlays the source section's subtree onto the target,
// section by section, tag by tag. For each subsection of the source, in
// source order, the matching-named subsection of the target is resolved or
// created and merged recursively; each source tag/value is stored into the
// target section, overwriting an existing value. The merge is additive:
// target entries absent from the source are left untouched.
func MergeSection(target, source *Section) {
	for _, e := range source.entries {
		if e.tv != nil {
			target.AddTagValue(e.tv.Tag, e.tv.Value)
			continue
		}
		sub := target.findSubsection(e.sub.name)
		if sub == nil {
			sub = target.AddSubsection(e.sub.name)
		}
		MergeSection(sub, e.sub)
	}
}

// MergeCommandline scans args left to right for "-tag value" pairs and
// stores each as an override into base. Consumed tokens are removed; the
// returned slice holds the unconsumed tokens in their original relative
// order.
func MergeCommandline(base *Section, args []string) []string {
	var residual []string
	i := 0
	for i < len(args) {
		arg := args[i]
		if strings.HasPrefix(arg, "-") && len(arg) > 1 && i+1 < len(args) {
			base.StoreTagValue(arg[1:], args[i+1])
			i += 2
			continue
		}
		residual = append(residual, arg)
		i++
	}
	return residual
}
