package ebiten

// maxCachedTexts bounds the glyph cache. HUD strings change only when health
// does, so a handful of entries covers a whole match.
const maxCachedTexts = 64

// textCache keeps one rendered image per string so text is not redrawn
// offscreen every frame. When full it releases everything and starts over.
type textCache[T any] struct {
	entries map[string]T
	limit   int
	create  func(str string) T
	release func(T)
}

func newTextCache[T any](limit int, create func(string) T, release func(T)) *textCache[T] {
	return &textCache[T]{
		entries: make(map[string]T),
		limit:   limit,
		create:  create,
		release: release,
	}
}

// get returns the cached entry for str, creating it on first use.
func (c *textCache[T]) get(str string) T {
	if v, ok := c.entries[str]; ok {
		return v
	}
	if len(c.entries) >= c.limit {
		c.clear()
	}
	v := c.create(str)
	c.entries[str] = v
	return v
}

func (c *textCache[T]) clear() {
	for key, v := range c.entries {
		c.release(v)
		delete(c.entries, key)
	}
}

func (c *textCache[T]) size() int {
	return len(c.entries)
}
