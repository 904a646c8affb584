package ksym

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddAndFind(t *testing.T) {
	set := New()
	s := set.Add("printk", 0)
	require.Equal(t, "printk", s.Name())
	require.Equal(t, uint64(0), s.Value())
	require.Empty(t, s.Alias())
	require.False(t, s.IsMarked())

	require.Same(t, s, set.Find("printk"))
	require.Nil(t, set.Find("vfree"))
	require.Nil(t, set.Find(""))
	require.Equal(t, 1, set.Len())
}

func TestMarkIsIdempotent(t *testing.T) {
	set := New()
	s := set.Add("kmalloc", 1)

	s.Mark()
	require.True(t, s.IsMarked())
	require.Equal(t, 1, set.MarkCount())

	s.Mark()
	require.True(t, s.IsMarked())
	require.Equal(t, 1, set.MarkCount(), "second mark must not bump the count")
}

func TestForEachUnmarked(t *testing.T) {
	set := New()
	set.Add("a", 0)
	set.Add("b", 1)
	set.Add("c", 2)
	set.Find("b").Mark()

	got := map[string]uint64{}
	set.ForEachUnmarked(func(name string, value uint64) {
		got[name] = value
	})
	require.Equal(t, map[string]uint64{"a": 0, "c": 2}, got)
}

func TestForEachVisitsAll(t *testing.T) {
	set := New()
	set.Add("x", 10)
	set.Add("y", 11)

	var names []string
	set.ForEach(func(s *Ksym) { names = append(names, s.Name()) })
	sort.Strings(names)
	require.Equal(t, []string{"x", "y"}, names)
}

func TestAddDuplicateReplaces(t *testing.T) {
	set := New()
	old := set.Add("dup", 1)
	old.Mark()
	require.Equal(t, 1, set.MarkCount())

	repl := set.Add("dup", 2)
	require.Equal(t, 1, set.Len())
	require.Same(t, repl, set.Find("dup"))
	require.Equal(t, uint64(2), repl.Value())
	require.False(t, repl.IsMarked())
	require.Equal(t, 0, set.MarkCount(), "replacing a marked entry drops its mark")
}

func TestMarkOnReplacedEntryLeavesSetAlone(t *testing.T) {
	set := New()
	old := set.Add("dup", 1)
	set.Add("dup", 2)

	// A handle evicted by the replacement must not reach the live count.
	old.Mark()
	require.True(t, old.IsMarked())
	require.Equal(t, 0, set.MarkCount())

	marked := 0
	set.ForEach(func(s *Ksym) {
		if s.IsMarked() {
			marked++
		}
	})
	require.Equal(t, marked, set.MarkCount())

	set.Find("dup").Mark()
	require.Equal(t, 1, set.MarkCount())
}

func TestCopyCarriesAliasNotMark(t *testing.T) {
	src := New()
	orig := src.Add("init_net", 7)
	orig.SetAlias("init_net@net")
	orig.Mark()

	dst := New()
	dup := dst.Copy(orig)
	require.Equal(t, "init_net", dup.Name())
	require.Equal(t, uint64(7), dup.Value())
	require.Equal(t, "init_net@net", dup.Alias())
	require.False(t, dup.IsMarked())
	require.Equal(t, 0, dst.MarkCount())

	// Marking the copy affects only its own set.
	dup.Mark()
	require.Equal(t, 1, dst.MarkCount())
	require.Equal(t, 1, src.MarkCount())
}

func TestSetAliasClears(t *testing.T) {
	set := New()
	s := set.Add("sym", 0)
	s.SetAlias("sym@ver")
	require.Equal(t, "sym@ver", s.Alias())
	s.SetAlias("")
	require.Empty(t, s.Alias())
}

func TestNilSetIsEmpty(t *testing.T) {
	var set *Ksymtab
	require.Equal(t, 0, set.Len())
	require.Equal(t, 0, set.MarkCount())
	require.Nil(t, set.Find("anything"))
	set.ForEach(func(*Ksym) { t.Fatal("nil set must visit nothing") })
	set.ForEachUnmarked(func(string, uint64) { t.Fatal("nil set must visit nothing") })
}
