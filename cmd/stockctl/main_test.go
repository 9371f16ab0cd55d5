package main

import (
	"bytes"
	"testing"

	"fsanano/stockmgmt/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"migrate", "seed-admin", "report"}, names)
}

func TestRootCmd_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	root := newRootCmd()
	root.SetArgs([]string{"migrate"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	assert.EqualError(t, err, "DATABASE_URL must be set")
}

func TestPrintJSON(t *testing.T) {
	summary := model.AnalyticsSummary{TotalStock: 30, StockByType: []model.TypeStock{{Type: "Phone", TotalStock: 30}}}

	var compact, pretty bytes.Buffer
	require.NoError(t, printJSON(&compact, summary, false))
	require.NoError(t, printJSON(&pretty, summary, true))

	assert.Contains(t, compact.String(), `"totalStock":30`)
	assert.Contains(t, pretty.String(), "\n  \"totalStock\": 30")
}
