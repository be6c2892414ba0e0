package schema

// Change is a single column assignment of an update.
type Change struct {
	Column string
	Value  any
}

// ChangeSet is an ordered set of column assignments. Only the columns in a
// change set are written by an update.
type ChangeSet struct {
	changes []Change
}

// Set assigns value to column, replacing an earlier assignment of the same column.
func (c *ChangeSet) Set(column string, value any) {
	for i := range c.changes {
		if c.changes[i].Column == column {
			c.changes[i].Value = value
			return
		}
	}
	c.changes = append(c.changes, Change{Column: column, Value: value})
}

func (c ChangeSet) Changes() []Change {
	return c.changes
}

func (c ChangeSet) Empty() bool {
	return len(c.changes) == 0
}
