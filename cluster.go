package agglo

// Cluster is one record in the cluster arena: the point indices it contains
// and whether it is still a candidate for merging. Records are addressed by
// stable ID (their index in the arena) and are deactivated rather than
// removed, so IDs stay valid for matrix lookups and history entries after
// the cluster has been absorbed.
type Cluster struct {
	members []int
	active  bool
}

// newCluster returns an empty active cluster.
func newCluster() *Cluster {
	return &Cluster{active: true}
}

// Append adds a single point index to the member list.
func (c *Cluster) Append(item int) {
	c.members = append(c.members, item)
}

// Extend adds a sequence of point indices, preserving their relative order.
func (c *Cluster) Extend(items []int) {
	c.members = append(c.members, items...)
}

// Release deactivates the cluster and clears its members. The members have
// been transferred to the cluster that absorbed this one; a released cluster
// is never reactivated or selected as a merge candidate again.
func (c *Cluster) Release() {
	c.active = false
	c.members = nil
}

// Size returns the number of points currently in the cluster.
func (c *Cluster) Size() int {
	return len(c.members)
}

// Members returns the point indices in the cluster, in insertion order.
// The returned slice is the cluster's own storage; callers must not modify it.
func (c *Cluster) Members() []int {
	return c.members
}

// Active reports whether the cluster is still a merge candidate.
func (c *Cluster) Active() bool {
	return c.active
}
