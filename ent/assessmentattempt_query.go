// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/soltrack/soltrack/ent/assessmentattempt"
	"github.com/soltrack/soltrack/ent/assessmentitem"
	"github.com/soltrack/soltrack/ent/predicate"
	"github.com/soltrack/soltrack/ent/standard"
	"github.com/soltrack/soltrack/ent/user"
)

// AssessmentAttemptQuery is the builder for querying AssessmentAttempt entities.
type AssessmentAttemptQuery struct {
	config
	ctx          *QueryContext
	order        []assessmentattempt.OrderOption
	inters       []Interceptor
	predicates   []predicate.AssessmentAttempt
	withUser     *UserQuery
	withItem     *AssessmentItemQuery
	withStandard *StandardQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AssessmentAttemptQuery builder.
func (_q *AssessmentAttemptQuery) Where(ps ...predicate.AssessmentAttempt) *AssessmentAttemptQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AssessmentAttemptQuery) Limit(limit int) *AssessmentAttemptQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AssessmentAttemptQuery) Offset(offset int) *AssessmentAttemptQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AssessmentAttemptQuery) Unique(unique bool) *AssessmentAttemptQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AssessmentAttemptQuery) Order(o ...assessmentattempt.OrderOption) *AssessmentAttemptQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryUser chains the current query on the "user" edge.
func (_q *AssessmentAttemptQuery) QueryUser() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(assessmentattempt.Table, assessmentattempt.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assessmentattempt.UserTable, assessmentattempt.UserColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryItem chains the current query on the "item" edge.
func (_q *AssessmentAttemptQuery) QueryItem() *AssessmentItemQuery {
	query := (&AssessmentItemClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(assessmentattempt.Table, assessmentattempt.FieldID, selector),
			sqlgraph.To(assessmentitem.Table, assessmentitem.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assessmentattempt.ItemTable, assessmentattempt.ItemColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStandard chains the current query on the "standard" edge.
func (_q *AssessmentAttemptQuery) QueryStandard() *StandardQuery {
	query := (&StandardClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(assessmentattempt.Table, assessmentattempt.FieldID, selector),
			sqlgraph.To(standard.Table, standard.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assessmentattempt.StandardTable, assessmentattempt.StandardColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AssessmentAttempt entity from the query.
// Returns a *NotFoundError when no AssessmentAttempt was found.
func (_q *AssessmentAttemptQuery) First(ctx context.Context) (*AssessmentAttempt, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{assessmentattempt.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AssessmentAttemptQuery) FirstX(ctx context.Context) *AssessmentAttempt {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AssessmentAttempt ID from the query.
// Returns a *NotFoundError when no AssessmentAttempt ID was found.
func (_q *AssessmentAttemptQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{assessmentattempt.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AssessmentAttemptQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AssessmentAttempt entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AssessmentAttempt entity is found.
// Returns a *NotFoundError when no AssessmentAttempt entities are found.
func (_q *AssessmentAttemptQuery) Only(ctx context.Context) (*AssessmentAttempt, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{assessmentattempt.Label}
	default:
		return nil, &NotSingularError{assessmentattempt.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AssessmentAttemptQuery) OnlyX(ctx context.Context) *AssessmentAttempt {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AssessmentAttempt ID in the query.
// Returns a *NotSingularError when more than one AssessmentAttempt ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AssessmentAttemptQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{assessmentattempt.Label}
	default:
		err = &NotSingularError{assessmentattempt.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AssessmentAttemptQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AssessmentAttempts.
func (_q *AssessmentAttemptQuery) All(ctx context.Context) ([]*AssessmentAttempt, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AssessmentAttempt, *AssessmentAttemptQuery]()
	return withInterceptors[[]*AssessmentAttempt](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AssessmentAttemptQuery) AllX(ctx context.Context) []*AssessmentAttempt {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AssessmentAttempt IDs.
func (_q *AssessmentAttemptQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(assessmentattempt.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AssessmentAttemptQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AssessmentAttemptQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AssessmentAttemptQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AssessmentAttemptQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AssessmentAttemptQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AssessmentAttemptQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AssessmentAttemptQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AssessmentAttemptQuery) Clone() *AssessmentAttemptQuery {
	if _q == nil {
		return nil
	}
	return &AssessmentAttemptQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]assessmentattempt.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.AssessmentAttempt{}, _q.predicates...),
		withUser:     _q.withUser.Clone(),
		withItem:     _q.withItem.Clone(),
		withStandard: _q.withStandard.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithUser tells the query-builder to eager-load the nodes that are connected to
// the "user" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AssessmentAttemptQuery) WithUser(opts ...func(*UserQuery)) *AssessmentAttemptQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUser = query
	return _q
}

// WithItem tells the query-builder to eager-load the nodes that are connected to
// the "item" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AssessmentAttemptQuery) WithItem(opts ...func(*AssessmentItemQuery)) *AssessmentAttemptQuery {
	query := (&AssessmentItemClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withItem = query
	return _q
}

// WithStandard tells the query-builder to eager-load the nodes that are connected to
// the "standard" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AssessmentAttemptQuery) WithStandard(opts ...func(*StandardQuery)) *AssessmentAttemptQuery {
	query := (&StandardClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStandard = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AssessmentAttempt.Query().
//		GroupBy(assessmentattempt.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AssessmentAttemptQuery) GroupBy(field string, fields ...string) *AssessmentAttemptGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AssessmentAttemptGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = assessmentattempt.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.AssessmentAttempt.Query().
//		Select(assessmentattempt.FieldUserID).
//		Scan(ctx, &v)
func (_q *AssessmentAttemptQuery) Select(fields ...string) *AssessmentAttemptSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AssessmentAttemptSelect{AssessmentAttemptQuery: _q}
	sbuild.label = assessmentattempt.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AssessmentAttemptSelect configured with the given aggregations.
func (_q *AssessmentAttemptQuery) Aggregate(fns ...AggregateFunc) *AssessmentAttemptSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AssessmentAttemptQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !assessmentattempt.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *AssessmentAttemptQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AssessmentAttempt, error) {
	var (
		nodes       = []*AssessmentAttempt{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withUser != nil,
			_q.withItem != nil,
			_q.withStandard != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AssessmentAttempt).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AssessmentAttempt{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withUser; query != nil {
		if err := _q.loadUser(ctx, query, nodes, nil,
			func(n *AssessmentAttempt, e *User) { n.Edges.User = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withItem; query != nil {
		if err := _q.loadItem(ctx, query, nodes, nil,
			func(n *AssessmentAttempt, e *AssessmentItem) { n.Edges.Item = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStandard; query != nil {
		if err := _q.loadStandard(ctx, query, nodes, nil,
			func(n *AssessmentAttempt, e *Standard) { n.Edges.Standard = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AssessmentAttemptQuery) loadUser(ctx context.Context, query *UserQuery, nodes []*AssessmentAttempt, init func(*AssessmentAttempt), assign func(*AssessmentAttempt, *User)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*AssessmentAttempt)
	for i := range nodes {
		fk := nodes[i].UserID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "user_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *AssessmentAttemptQuery) loadItem(ctx context.Context, query *AssessmentItemQuery, nodes []*AssessmentAttempt, init func(*AssessmentAttempt), assign func(*AssessmentAttempt, *AssessmentItem)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*AssessmentAttempt)
	for i := range nodes {
		fk := nodes[i].ItemID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(assessmentitem.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "item_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *AssessmentAttemptQuery) loadStandard(ctx context.Context, query *StandardQuery, nodes []*AssessmentAttempt, init func(*AssessmentAttempt), assign func(*AssessmentAttempt, *Standard)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*AssessmentAttempt)
	for i := range nodes {
		fk := nodes[i].StandardID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(standard.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "standard_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *AssessmentAttemptQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AssessmentAttemptQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(assessmentattempt.Table, assessmentattempt.Columns, sqlgraph.NewFieldSpec(assessmentattempt.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentattempt.FieldID)
		for i := range fields {
			if fields[i] != assessmentattempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withUser != nil {
			_spec.Node.AddColumnOnce(assessmentattempt.FieldUserID)
		}
		if _q.withItem != nil {
			_spec.Node.AddColumnOnce(assessmentattempt.FieldItemID)
		}
		if _q.withStandard != nil {
			_spec.Node.AddColumnOnce(assessmentattempt.FieldStandardID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *AssessmentAttemptQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(assessmentattempt.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = assessmentattempt.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AssessmentAttemptGroupBy is the group-by builder for AssessmentAttempt entities.
type AssessmentAttemptGroupBy struct {
	selector
	build *AssessmentAttemptQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AssessmentAttemptGroupBy) Aggregate(fns ...AggregateFunc) *AssessmentAttemptGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AssessmentAttemptGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AssessmentAttemptQuery, *AssessmentAttemptGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AssessmentAttemptGroupBy) sqlScan(ctx context.Context, root *AssessmentAttemptQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AssessmentAttemptSelect is the builder for selecting fields of AssessmentAttempt entities.
type AssessmentAttemptSelect struct {
	*AssessmentAttemptQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AssessmentAttemptSelect) Aggregate(fns ...AggregateFunc) *AssessmentAttemptSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AssessmentAttemptSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AssessmentAttemptQuery, *AssessmentAttemptSelect](ctx, _s.AssessmentAttemptQuery, _s, _s.inters, v)
}

func (_s *AssessmentAttemptSelect) sqlScan(ctx context.Context, root *AssessmentAttemptQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
