package storage

// Spec describes a query over an entity set: an optional WHERE clause with
// positional args, relations to load and ordering. Stores build Specs and
// hand them to the generic Repository, which translates them onto Bun's
// query builder.
type Spec struct {
	where     []clause
	relations []string
	orders    []string
}

type clause struct {
	schema string
	args   []interface{}
}

// NewSpec starts a Spec with an initial predicate. An empty schema yields an
// unfiltered Spec.
func NewSpec(schema string, args ...interface{}) *Spec {
	s := &Spec{}
	if schema != "" {
		s.where = append(s.where, clause{schema, args})
	}
	return s
}

// Where ANDs another predicate onto the Spec.
func (s *Spec) Where(schema string, args ...interface{}) *Spec {
	s.where = append(s.where, clause{schema, args})
	return s
}

// Relation requests a related entity to be loaded ("Property", "School").
func (s *Spec) Relation(names ...string) *Spec {
	s.relations = append(s.relations, names...)
	return s
}

// Order appends an ordering expression ("created_at DESC").
func (s *Spec) Order(orders ...string) *Spec {
	s.orders = append(s.orders, orders...)
	return s
}

// TenantSpec starts a Spec scoped to a tenant, the usual entry point for
// tenant-owned entities.
func TenantSpec(tenantID string) *Spec {
	return NewSpec("tenant_id = ?", tenantID)
}
