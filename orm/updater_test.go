package orm

import (
	"testing"

	"github.com/coderi421/activerecord/internal/errs"
	"github.com/stretchr/testify/assert"
)

func TestUpdater_Build(t *testing.T) {
	testCases := []struct {
		name      string
		u         QueryBuilder
		wantQuery *Query
		wantErr   error
	}{
		{
			name:    "no columns",
			u:       NewUpdater("test_model", MySQL),
			wantErr: errs.ErrNoUpdatedColumns,
		},
		{
			name: "single column",
			u:    NewUpdater("test_model", MySQL).Set(Assign("first_name", "Tom")),
			wantQuery: &Query{
				SQL:  "UPDATE `test_model` SET `first_name`=?;",
				Args: []any{"Tom"},
			},
		},
		{
			name: "with where",
			u: NewUpdater("test_model", MySQL).
				Set(Assign("status", "active")).
				Where(C("id").EQ(42)),
			wantQuery: &Query{
				SQL:  "UPDATE `test_model` SET `status`=? WHERE `id` = ?;",
				Args: []any{"active", 42},
			},
		},
		{
			name: "multiple columns",
			u: NewUpdater("test_model", MySQL).
				Set(Assign("first_name", "Tom"), Assign("age", 18)),
			wantQuery: &Query{
				SQL:  "UPDATE `test_model` SET `first_name`=?,`age`=?;",
				Args: []any{"Tom", 18},
			},
		},
		{
			name: "math expression",
			u:    NewUpdater("test_model", MySQL).Set(Assign("age", C("age").Add(1))),
			wantQuery: &Query{
				SQL:  "UPDATE `test_model` SET `age`=`age` + ?;",
				Args: []any{1},
			},
		},
		{
			name: "nested math expression",
			u:    NewUpdater("test_model", MySQL).Set(Assign("age", C("age").Add(1).Multi(2))),
			wantQuery: &Query{
				SQL:  "UPDATE `test_model` SET `age`=(`age` + ?) * ?;",
				Args: []any{1, 2},
			},
		},
		{
			name: "column operand",
			u:    NewUpdater("order_items", MySQL).Set(Assign("total", C("price").Multi(C("count")).Add(5))),
			wantQuery: &Query{
				SQL:  "UPDATE `order_items` SET `total`=(`price` * `count`) + ?;",
				Args: []any{5},
			},
		},
		{
			name: "zero predicate",
			u:    NewUpdater("test_model", MySQL).Set(Assign("age", 1)).Where(Predicate{}),
			wantQuery: &Query{
				SQL:  "UPDATE `test_model` SET `age`=?;",
				Args: []any{1},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := tc.u.Build()
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantQuery, q)
		})
	}
}
