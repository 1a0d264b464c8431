package counters

// Containment is the status counter applied by the containment lock.
// While a figure carries it, every action is blocked.
const Containment = "containment"

// Counter represents a named status counter on a figure.
type Counter struct {
	Name  string
	Count int
}

// NewCounter creates a new counter with the given name and count.
func NewCounter(name string, count int) *Counter {
	if count <= 0 {
		count = 1
	}
	return &Counter{
		Name:  name,
		Count: count,
	}
}

// Add adds the specified amount to the counter.
func (c *Counter) Add(amount int) {
	if amount > 0 {
		c.Count += amount
	}
}

// Remove removes the specified amount from the counter.
// Will not allow count to go below 0.
func (c *Counter) Remove(amount int) {
	if amount > 0 {
		if c.Count >= amount {
			c.Count -= amount
		} else {
			c.Count = 0
		}
	}
}

// Copy creates a deep copy of the counter.
func (c *Counter) Copy() *Counter {
	return &Counter{
		Name:  c.Name,
		Count: c.Count,
	}
}

// Counters manages the collection of status counters on one figure.
type Counters struct {
	Counters map[string]*Counter
}

// NewCounters creates a new Counters collection.
func NewCounters() *Counters {
	return &Counters{
		Counters: make(map[string]*Counter),
	}
}

// Set replaces the count of the named counter. A non-positive count
// removes it.
func (cs *Counters) Set(name string, count int) {
	if count <= 0 {
		delete(cs.Counters, name)
		return
	}
	cs.Counters[name] = &Counter{Name: name, Count: count}
}

// AddCounter adds a counter to the collection.
// If a counter with the same name already exists, adds to its count.
func (cs *Counters) AddCounter(counter *Counter) {
	if counter == nil {
		return
	}
	if existing, ok := cs.Counters[counter.Name]; ok {
		existing.Add(counter.Count)
	} else {
		cs.Counters[counter.Name] = counter.Copy()
	}
}

// RemoveCounter removes the specified amount of counters of the given name.
// Returns true if any counters were removed.
func (cs *Counters) RemoveCounter(name string, amount int) bool {
	if amount <= 0 {
		return false
	}
	if counter, ok := cs.Counters[name]; ok {
		counter.Remove(amount)
		if counter.Count == 0 {
			delete(cs.Counters, name)
		}
		return true
	}
	return false
}

// GetCount returns the count of counters with the given name.
func (cs *Counters) GetCount(name string) int {
	if counter, ok := cs.Counters[name]; ok {
		return counter.Count
	}
	return 0
}

// HasCounter returns true if there are any counters with the given name.
func (cs *Counters) HasCounter(name string) bool {
	return cs.GetCount(name) > 0
}

// Decay decrements every counter by one, dropping the ones that reach
// zero. It runs once per turn boundary regardless of owner.
func (cs *Counters) Decay() {
	for name, counter := range cs.Counters {
		counter.Remove(1)
		if counter.Count == 0 {
			delete(cs.Counters, name)
		}
	}
}

// Clear removes every counter, as happens when a figure is revived.
func (cs *Counters) Clear() {
	cs.Counters = make(map[string]*Counter)
}

// Copy creates a deep copy of the Counters collection.
func (cs *Counters) Copy() *Counters {
	out := NewCounters()
	for name, counter := range cs.Counters {
		out.Counters[name] = counter.Copy()
	}
	return out
}
