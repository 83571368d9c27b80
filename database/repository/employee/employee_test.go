package employeeRepo

import (
	"context"
	"testing"

	"staffhub/database"
	"staffhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildFilter(t *testing.T) {
	minAge, maxAge := 25, 40
	got := buildFilter(models.EmployeeFilter{
		Name:       "o.n",
		Department: "Engineering",
		MinAge:     &minAge,
		MaxAge:     &maxAge,
	})

	assert.Equal(t, primitive.Regex{Pattern: `o\.n`, Options: "i"}, got["name"])
	assert.Equal(t, "Engineering", got["department"])
	assert.Equal(t, bson.M{"$gte": 25, "$lte": 40}, got["age"])
	assert.NotContains(t, got, "class")
	assert.NotContains(t, got, "status")

	assert.Empty(t, buildFilter(models.EmployeeFilter{}))
}

func TestBuildPipelineLowercasesStringKeys(t *testing.T) {
	p := buildPipeline(bson.M{}, models.EmployeeSort{Field: models.SortByDepartment, Descending: true}, 20, 10)
	require.Len(t, p, 6)

	assert.Equal(t, "$addFields", p[1][0].Key)
	assert.Equal(t, bson.M{sortKeyField: bson.M{"$toLower": "$department"}}, p[1][0].Value)
	assert.Equal(t, bson.D{{Key: sortKeyField, Value: -1}, {Key: "_id", Value: 1}}, p[2][0].Value)
	assert.Equal(t, int64(20), p[3][0].Value)
	assert.Equal(t, int64(10), p[4][0].Value)
	assert.Equal(t, "$project", p[5][0].Key)
}

func TestBuildPipelineNumericKey(t *testing.T) {
	p := buildPipeline(bson.M{}, models.EmployeeSort{Field: models.SortBySalary}, 0, 10)
	require.Len(t, p, 4)
	assert.Equal(t, bson.D{{Key: "salary", Value: 1}, {Key: "_id", Value: 1}}, p[1][0].Value)

	// Unknown fields fall back to name.
	p = buildPipeline(bson.M{}, models.EmployeeSort{Field: "password"}, 0, 10)
	assert.Equal(t, bson.M{sortKeyField: bson.M{"$toLower": "$name"}}, p[1][0].Value)
}

func TestPatchToSetOnlySetsGivenFields(t *testing.T) {
	name := "New Name"
	set := patchToSet(models.EmployeePatch{Name: &name})
	assert.Equal(t, bson.M{"name": "New Name"}, set)
	assert.Empty(t, patchToSet(models.EmployeePatch{}))
}

func TestMemoryRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryEmployeeRepo()

	for _, e := range []models.Employee{
		{Name: "bob", Email: "bob@x.co", Department: "Sales", Age: 30},
		{Name: "Alice", Email: "alice@x.co", Department: "Sales", Age: 40},
		{Name: "carol", Email: "carol@x.co", Department: "Finance", Age: 50},
	} {
		require.NoError(t, repo.Create(ctx, &e))
		assert.False(t, e.ID.IsZero())
	}
	assert.ErrorIs(t, repo.Create(ctx, &models.Employee{Name: "dup", Email: "bob@x.co"}), database.ErrDuplicateKey)

	list, total, err := repo.List(ctx, models.EmployeeFilter{}, models.EmployeeSort{Field: models.SortByName}, 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, list, 2)
	assert.Equal(t, "Alice", list[0].Name)
	assert.Equal(t, "bob", list[1].Name)

	list, total, err = repo.List(ctx, models.EmployeeFilter{}, models.EmployeeSort{Field: models.SortByAge}, 5, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Empty(t, list)

	n, err := repo.CountByDepartment(ctx, "Sales")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	moved, err := repo.RenameDepartment(ctx, "Sales", "Revenue")
	require.NoError(t, err)
	assert.EqualValues(t, 2, moved)
	n, err = repo.CountByDepartment(ctx, "Sales")
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := repo.GetByID(ctx, "not-an-id")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, repo.Delete(ctx, primitive.NewObjectID().Hex()), database.ErrNotFound)
}
