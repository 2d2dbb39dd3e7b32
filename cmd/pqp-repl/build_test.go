package main

import (
	"testing"

	"github.com/leoware/pqp-go/algebra"
	"github.com/stretchr/testify/require"
)

func TestBuildGraph(t *testing.T) {
	spec := graphSpec{
		Directed:   []edgeSpec{{"z", "x"}, {"z", "y"}, {"x", "y"}},
		Bidirected: nil,
	}

	g, err := buildGraph(spec)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"x", "y", "z"}, g.Nodes())
	require.ElementsMatch(t, []string{"x", "y"}, g.DirectedChildren("z"))
}

func TestBuildGraph_InvalidEdge(t *testing.T) {
	spec := graphSpec{Directed: []edgeSpec{{"x", "x"}}}
	_, err := buildGraph(spec)
	require.Error(t, err)
}

func TestBuildEstimand_BareBinaryShorthand(t *testing.T) {
	path := writeTempConfig(t, backdoorYAML)
	cfg, err := loadConfig(path)
	require.NoError(t, err)

	est, err := buildEstimand(cfg.Query)
	require.NoError(t, err)

	expr, err := est.Expression()
	require.NoError(t, err)
	require.NotNil(t, expr)

	lit, err := est.Literal()
	require.NoError(t, err)
	require.Contains(t, algebra.ASCII(lit), "ATE")
}

func TestBuildEstimand_ExplicitConditionMap(t *testing.T) {
	spec := querySpec{Outcome: "y"}
	require.NoError(t, spec.Treatment.Encode(map[string]interface{}{"x": 1}))
	spec.Control = map[string]interface{}{"x": 0}

	est, err := buildEstimand(spec)
	require.NoError(t, err)

	expr, err := est.Expression()
	require.NoError(t, err)
	require.NotNil(t, expr)
}

func TestConvertColumn(t *testing.T) {
	boolCol, err := convertColumn([]interface{}{true, false, true})
	require.NoError(t, err)
	require.IsType(t, []bool{}, boolCol)

	intCol, err := convertColumn([]interface{}{0, 1, 1})
	require.NoError(t, err)
	require.IsType(t, []int64{}, intCol)

	floatCol, err := convertColumn([]interface{}{0, 1.5, 2})
	require.NoError(t, err)
	require.IsType(t, []float64{}, floatCol)

	strCol, err := convertColumn([]interface{}{"a", "b"})
	require.NoError(t, err)
	require.IsType(t, []string{}, strCol)

	_, err = convertColumn([]interface{}{"a", 1})
	require.Error(t, err)

	_, err = convertColumn(nil)
	require.Error(t, err)
}
