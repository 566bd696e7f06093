package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/oaslint/oaslint/linterrors"
)

// writeDocSet expands a txtar archive into a temp directory and returns the
// path of the entry file, assumed to be named openapi.yaml.
func writeDocSet(t *testing.T, archive string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range txtar.Parse([]byte(archive)).Files {
		p := filepath.Join(dir, filepath.FromSlash(f.Name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, f.Data, 0o600))
	}
	return filepath.Join(dir, "openapi.yaml")
}

// cleanDocSet is a fully conformant modular document set reused across
// loader and checker tests.
const cleanDocSet = `
-- openapi.yaml --
openapi: 3.0.3
info:
  title: Teams API
  version: 1.0.0
paths:
  /teams:
    $ref: ./paths/teams.yaml
components:
  schemas:
    Team:
      $ref: ./components/schemas/team.yaml#/Team
  requestBodies:
    CreateTeamRequest:
      $ref: ./components/request-bodies/create-team.yaml#/CreateTeamRequest
  responses:
    NotFoundResponse:
      $ref: ./components/responses/errors.yaml#/NotFoundResponse
-- paths/teams.yaml --
get:
  tags: [teams]
  summary: List teams
  description: Returns all teams.
  responses:
    '200':
      description: A list of teams.
      content:
        application/json:
          schema:
            $ref: ../components/schemas/team.yaml#/Team
    '404':
      $ref: ../components/responses/errors.yaml#/NotFoundResponse
-- components/schemas/team.yaml --
Team:
  type: object
  properties:
    id:
      type: string
    name:
      type: string
-- components/request-bodies/create-team.yaml --
CreateTeamRequest:
  required: true
  content:
    application/json:
      schema:
        $ref: ../schemas/team.yaml#/Team
-- components/responses/errors.yaml --
NotFoundResponse:
  description: The resource was not found.
  content:
    application/json:
      schema:
        $ref: ../schemas/common/error-response.yaml#/ErrorResponse
-- components/schemas/common/error-response.yaml --
ErrorResponse:
  type: object
  properties:
    code:
      type: string
    message:
      type: string
`

func TestLoadCleanDocSet(t *testing.T) {
	entry := writeDocSet(t, cleanDocSet)

	graph, err := New().Load(entry)
	require.NoError(t, err)

	assert.Equal(t, "openapi.yaml", graph.EntryFile)
	assert.Equal(t, []string{
		"components/request-bodies/create-team.yaml",
		"components/responses/errors.yaml",
		"components/schemas/common/error-response.yaml",
		"components/schemas/team.yaml",
		"openapi.yaml",
		"paths/teams.yaml",
	}, graph.Files)

	assert.Equal(t, 6, graph.Stats.FileCount)
	assert.Equal(t, 1, graph.Stats.PathCount)
	assert.Equal(t, 1, graph.Stats.OperationCount)
	assert.Equal(t, 1, graph.Stats.SchemaCount)
	assert.Positive(t, graph.SourceSize)
}

func TestLoadProvenance(t *testing.T) {
	entry := writeDocSet(t, cleanDocSet)

	graph, err := New().Load(entry)
	require.NoError(t, err)

	pathItem := graph.Root.Field("paths").Field("/teams")
	require.True(t, pathItem.IsPureRef())
	assert.Equal(t, "openapi.yaml", pathItem.File)
	assert.Equal(t, "/paths/~1teams", pathItem.Pointer)

	resolved := pathItem.Resolve()
	require.NotNil(t, resolved)
	assert.Equal(t, "paths/teams.yaml", resolved.File)
	assert.Equal(t, "", resolved.Pointer)
	assert.True(t, resolved.Has("get"))

	schema := resolved.Field("get").
		Field("responses").Field("200").
		Field("content").Field("application/json").Field("schema")
	require.True(t, schema.IsRef())
	target := schema.Resolve()
	require.NotNil(t, target)
	assert.Equal(t, "components/schemas/team.yaml", target.File)
	assert.Equal(t, "/Team", target.Pointer)
	assert.Positive(t, target.Line)
}

func TestLoadSameFileFragment(t *testing.T) {
	entry := writeDocSet(t, `
-- openapi.yaml --
openapi: 3.0.3
info:
  title: Minimal
  version: 1.0.0
paths: {}
components:
  schemas:
    Alias:
      $ref: '#/components/schemas/Real'
    Real:
      type: object
`)
	graph, err := New().Load(entry)
	require.NoError(t, err)

	alias := graph.Root.Field("components").Field("schemas").Field("Alias")
	require.True(t, alias.IsRef())
	target := alias.Resolve()
	require.NotNil(t, target)
	assert.Equal(t, "/components/schemas/Real", target.Pointer)
}

func TestLoadJSONFile(t *testing.T) {
	entry := writeDocSet(t, `
-- openapi.yaml --
openapi: 3.0.3
info:
  title: Mixed
  version: 1.0.0
paths: {}
components:
  schemas:
    Team:
      $ref: ./components/schemas/team.json#/Team
-- components/schemas/team.json --
{
  "Team": {
    "type": "object",
    "properties": {
      "id": {"type": "string"}
    }
  }
}
`)
	graph, err := New().Load(entry)
	require.NoError(t, err)

	target := graph.Root.Field("components").Field("schemas").Field("Team").Resolve()
	require.NotNil(t, target)
	assert.Equal(t, "components/schemas/team.json", target.File)
	assert.Equal(t, "object", target.Field("type").Value)
}

func TestLoadMutuallyReferencingFiles(t *testing.T) {
	entry := writeDocSet(t, `
-- openapi.yaml --
openapi: 3.0.3
info:
  title: Cyclic
  version: 1.0.0
paths: {}
components:
  schemas:
    Team:
      $ref: ./components/schemas/team.yaml#/Team
-- components/schemas/team.yaml --
Team:
  type: object
  properties:
    members:
      type: array
      items:
        $ref: ./member.yaml#/Member
-- components/schemas/member.yaml --
Member:
  type: object
  properties:
    team:
      $ref: ./team.yaml#/Team
`)
	graph, err := New().Load(entry)
	require.NoError(t, err)
	assert.Len(t, graph.Files, 3)

	team := graph.Root.Field("components").Field("schemas").Field("Team").Resolve()
	require.NotNil(t, team)
	member := team.Field("properties").Field("members").Field("items").Resolve()
	require.NotNil(t, member)
	assert.Equal(t, "components/schemas/member.yaml", member.File)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		archive string
		target  error
	}{
		{
			name: "missing referenced file",
			archive: `
-- openapi.yaml --
openapi: 3.0.3
paths:
  /teams:
    $ref: ./paths/teams.yaml
`,
			target: linterrors.ErrLoad,
		},
		{
			name: "missing fragment target",
			archive: `
-- openapi.yaml --
openapi: 3.0.3
paths: {}
components:
  schemas:
    Team:
      $ref: ./components/schemas/team.yaml#/Nope
-- components/schemas/team.yaml --
Team:
  type: object
`,
			target: linterrors.ErrReference,
		},
		{
			name: "path traversal",
			archive: `
-- openapi.yaml --
openapi: 3.0.3
paths: {}
components:
  schemas:
    Evil:
      $ref: ../../outside.yaml#/X
`,
			target: linterrors.ErrPathTraversal,
		},
		{
			name: "remote reference",
			archive: `
-- openapi.yaml --
openapi: 3.0.3
paths: {}
components:
  schemas:
    Remote:
      $ref: https://example.com/team.yaml#/Team
`,
			target: linterrors.ErrReference,
		},
		{
			name: "unparseable document",
			archive: `
-- openapi.yaml --
openapi: 3.0.3
paths:
	tabs: are not allowed here
`,
			target: linterrors.ErrLoad,
		},
		{
			name: "empty referenced document",
			archive: `
-- openapi.yaml --
openapi: 3.0.3
paths:
  /teams:
    $ref: ./paths/teams.yaml
-- paths/teams.yaml --
`,
			target: linterrors.ErrLoad,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entry := writeDocSet(t, tc.archive)
			graph, err := New().Load(entry)
			require.Error(t, err)
			assert.Nil(t, graph)
			assert.True(t, errors.Is(err, tc.target), "expected %v, got %v", tc.target, err)
		})
	}
}

func TestLoadMissingEntryFile(t *testing.T) {
	graph, err := New().Load(filepath.Join(t.TempDir(), "openapi.yaml"))
	require.Error(t, err)
	assert.Nil(t, graph)
	assert.True(t, errors.Is(err, linterrors.ErrLoad))

	var loadErr *linterrors.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "openapi.yaml", loadErr.File)
}

func TestLoadFileSizeLimit(t *testing.T) {
	entry := writeDocSet(t, cleanDocSet)

	l := New()
	l.MaxFileSize = 10
	_, err := l.Load(entry)
	require.Error(t, err)
	assert.ErrorIs(t, err, linterrors.ErrLoad)
	assert.Contains(t, err.Error(), "exceeds maximum")
}
