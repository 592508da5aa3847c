package catalog

// Job is one posting from the jobs dataset. IDs are assigned in load
// order starting at 1. Norm holds the normalized skill tokens derived
// once from Skills; records never change after load.
type Job struct {
	ID          int
	Title       string
	Company     string
	Location    string
	Description string
	Skills      string
	Norm        []string
}

// Course is one entry of the course dataset. Skills is the raw
// skill-string haystack recommendations are searched in.
type Course struct {
	Title  string
	URL    string
	Skills string
}

// Catalog holds both datasets plus the known-skill vocabulary used by
// resume extraction. Built once at startup and read-only afterwards,
// so concurrent requests share it without locking.
type Catalog struct {
	Jobs       []Job
	Courses    []Course
	Vocabulary []string

	byID map[int]int
}

// New builds a catalog from already-prepared records.
func New(jobs []Job, courses []Course, vocabulary []string) *Catalog {
	c := &Catalog{
		Jobs:       jobs,
		Courses:    courses,
		Vocabulary: vocabulary,
		byID:       make(map[int]int, len(jobs)),
	}
	for i, j := range jobs {
		c.byID[j.ID] = i
	}
	return c
}

// JobByID returns the job with the given id, if present.
func (c *Catalog) JobByID(id int) (Job, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Job{}, false
	}
	return c.Jobs[i], true
}
