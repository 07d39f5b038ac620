// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
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
)

// AssessmentItemQuery is the builder for querying AssessmentItem entities.
type AssessmentItemQuery struct {
	config
	ctx          *QueryContext
	order        []assessmentitem.OrderOption
	inters       []Interceptor
	predicates   []predicate.AssessmentItem
	withStandard *StandardQuery
	withAttempts *AssessmentAttemptQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AssessmentItemQuery builder.
func (_q *AssessmentItemQuery) Where(ps ...predicate.AssessmentItem) *AssessmentItemQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AssessmentItemQuery) Limit(limit int) *AssessmentItemQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AssessmentItemQuery) Offset(offset int) *AssessmentItemQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AssessmentItemQuery) Unique(unique bool) *AssessmentItemQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AssessmentItemQuery) Order(o ...assessmentitem.OrderOption) *AssessmentItemQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryStandard chains the current query on the "standard" edge.
func (_q *AssessmentItemQuery) QueryStandard() *StandardQuery {
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
			sqlgraph.From(assessmentitem.Table, assessmentitem.FieldID, selector),
			sqlgraph.To(standard.Table, standard.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assessmentitem.StandardTable, assessmentitem.StandardColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAttempts chains the current query on the "attempts" edge.
func (_q *AssessmentItemQuery) QueryAttempts() *AssessmentAttemptQuery {
	query := (&AssessmentAttemptClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(assessmentitem.Table, assessmentitem.FieldID, selector),
			sqlgraph.To(assessmentattempt.Table, assessmentattempt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, assessmentitem.AttemptsTable, assessmentitem.AttemptsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AssessmentItem entity from the query.
// Returns a *NotFoundError when no AssessmentItem was found.
func (_q *AssessmentItemQuery) First(ctx context.Context) (*AssessmentItem, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{assessmentitem.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AssessmentItemQuery) FirstX(ctx context.Context) *AssessmentItem {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AssessmentItem ID from the query.
// Returns a *NotFoundError when no AssessmentItem ID was found.
func (_q *AssessmentItemQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{assessmentitem.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AssessmentItemQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AssessmentItem entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AssessmentItem entity is found.
// Returns a *NotFoundError when no AssessmentItem entities are found.
func (_q *AssessmentItemQuery) Only(ctx context.Context) (*AssessmentItem, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{assessmentitem.Label}
	default:
		return nil, &NotSingularError{assessmentitem.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AssessmentItemQuery) OnlyX(ctx context.Context) *AssessmentItem {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AssessmentItem ID in the query.
// Returns a *NotSingularError when more than one AssessmentItem ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AssessmentItemQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{assessmentitem.Label}
	default:
		err = &NotSingularError{assessmentitem.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AssessmentItemQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AssessmentItems.
func (_q *AssessmentItemQuery) All(ctx context.Context) ([]*AssessmentItem, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AssessmentItem, *AssessmentItemQuery]()
	return withInterceptors[[]*AssessmentItem](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AssessmentItemQuery) AllX(ctx context.Context) []*AssessmentItem {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AssessmentItem IDs.
func (_q *AssessmentItemQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(assessmentitem.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AssessmentItemQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AssessmentItemQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AssessmentItemQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AssessmentItemQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AssessmentItemQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *AssessmentItemQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AssessmentItemQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AssessmentItemQuery) Clone() *AssessmentItemQuery {
	if _q == nil {
		return nil
	}
	return &AssessmentItemQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]assessmentitem.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.AssessmentItem{}, _q.predicates...),
		withStandard: _q.withStandard.Clone(),
		withAttempts: _q.withAttempts.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithStandard tells the query-builder to eager-load the nodes that are connected to
// the "standard" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AssessmentItemQuery) WithStandard(opts ...func(*StandardQuery)) *AssessmentItemQuery {
	query := (&StandardClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStandard = query
	return _q
}

// WithAttempts tells the query-builder to eager-load the nodes that are connected to
// the "attempts" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AssessmentItemQuery) WithAttempts(opts ...func(*AssessmentAttemptQuery)) *AssessmentItemQuery {
	query := (&AssessmentAttemptClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAttempts = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		StandardID string `json:"standard_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AssessmentItem.Query().
//		GroupBy(assessmentitem.FieldStandardID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AssessmentItemQuery) GroupBy(field string, fields ...string) *AssessmentItemGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AssessmentItemGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = assessmentitem.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		StandardID string `json:"standard_id,omitempty"`
//	}
//
//	client.AssessmentItem.Query().
//		Select(assessmentitem.FieldStandardID).
//		Scan(ctx, &v)
func (_q *AssessmentItemQuery) Select(fields ...string) *AssessmentItemSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AssessmentItemSelect{AssessmentItemQuery: _q}
	sbuild.label = assessmentitem.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AssessmentItemSelect configured with the given aggregations.
func (_q *AssessmentItemQuery) Aggregate(fns ...AggregateFunc) *AssessmentItemSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AssessmentItemQuery) prepareQuery(ctx context.Context) error {
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
		if !assessmentitem.ValidColumn(f) {
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

func (_q *AssessmentItemQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AssessmentItem, error) {
	var (
		nodes       = []*AssessmentItem{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withStandard != nil,
			_q.withAttempts != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AssessmentItem).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AssessmentItem{config: _q.config}
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
	if query := _q.withStandard; query != nil {
		if err := _q.loadStandard(ctx, query, nodes, nil,
			func(n *AssessmentItem, e *Standard) { n.Edges.Standard = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAttempts; query != nil {
		if err := _q.loadAttempts(ctx, query, nodes,
			func(n *AssessmentItem) { n.Edges.Attempts = []*AssessmentAttempt{} },
			func(n *AssessmentItem, e *AssessmentAttempt) { n.Edges.Attempts = append(n.Edges.Attempts, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AssessmentItemQuery) loadStandard(ctx context.Context, query *StandardQuery, nodes []*AssessmentItem, init func(*AssessmentItem), assign func(*AssessmentItem, *Standard)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*AssessmentItem)
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
func (_q *AssessmentItemQuery) loadAttempts(ctx context.Context, query *AssessmentAttemptQuery, nodes []*AssessmentItem, init func(*AssessmentItem), assign func(*AssessmentItem, *AssessmentAttempt)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AssessmentItem)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(assessmentattempt.FieldItemID)
	}
	query.Where(predicate.AssessmentAttempt(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(assessmentitem.AttemptsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ItemID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "item_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AssessmentItemQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AssessmentItemQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(assessmentitem.Table, assessmentitem.Columns, sqlgraph.NewFieldSpec(assessmentitem.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentitem.FieldID)
		for i := range fields {
			if fields[i] != assessmentitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withStandard != nil {
			_spec.Node.AddColumnOnce(assessmentitem.FieldStandardID)
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

func (_q *AssessmentItemQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(assessmentitem.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = assessmentitem.Columns
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

// AssessmentItemGroupBy is the group-by builder for AssessmentItem entities.
type AssessmentItemGroupBy struct {
	selector
	build *AssessmentItemQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AssessmentItemGroupBy) Aggregate(fns ...AggregateFunc) *AssessmentItemGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AssessmentItemGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AssessmentItemQuery, *AssessmentItemGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AssessmentItemGroupBy) sqlScan(ctx context.Context, root *AssessmentItemQuery, v any) error {
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

// AssessmentItemSelect is the builder for selecting fields of AssessmentItem entities.
type AssessmentItemSelect struct {
	*AssessmentItemQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AssessmentItemSelect) Aggregate(fns ...AggregateFunc) *AssessmentItemSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AssessmentItemSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AssessmentItemQuery, *AssessmentItemSelect](ctx, _s.AssessmentItemQuery, _s, _s.inters, v)
}

func (_s *AssessmentItemSelect) sqlScan(ctx context.Context, root *AssessmentItemQuery, v any) error {
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
