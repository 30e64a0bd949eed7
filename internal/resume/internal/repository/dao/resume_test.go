package dao

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGORMResumeDAO_Save(t *testing.T) {
	testCases := []struct {
		name    string
		ctx     context.Context
		r       Resume
		pi      PersonalInfo
		mock    func(t *testing.T) *sql.DB
		wantId  int64
		wantErr error
	}{
		{
			name: "无身份键-直接新建",
			ctx:  context.Background(),
			r: Resume{
				Summary: "资深后端",
			},
			pi: PersonalInfo{
				Name: "佚名",
			},
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				// email 和 phone 都缺失，不会有查身份的 SELECT
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `resumes` .*").
					WillReturnResult(sqlmock.NewResult(3, 1))
				mock.ExpectExec("INSERT INTO `personal_infos` .*").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
				return mockDB
			},
			wantId: 3,
		},
		{
			name: "按邮箱命中-整体替换",
			ctx:  context.Background(),
			r: Resume{
				Summary: "资深后端",
			},
			pi: PersonalInfo{
				Name:  "Tom",
				Email: sql.NullString{String: "tom@example.com", Valid: true},
			},
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				rows := sqlmock.NewRows([]string{"id", "resume_id", "name", "email"}).
					AddRow(9, 5, "Tom", "tom@example.com")
				mock.ExpectQuery("^SELECT \\* FROM `personal_infos` WHERE email = \\?").
					WillReturnRows(rows)
				mock.ExpectExec("DELETE FROM `work_experiences` .*").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec("DELETE FROM `projects` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("DELETE FROM `educations` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("DELETE FROM `resume_skills` .*").
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectExec("UPDATE `resumes` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `personal_infos` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
			wantId: 5,
		},
		{
			name: "唯一索引冲突",
			ctx:  context.Background(),
			r: Resume{
				Summary: "资深后端",
			},
			pi: PersonalInfo{
				Name: "佚名",
			},
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `resumes` .*").
					WillReturnResult(sqlmock.NewResult(3, 1))
				mock.ExpectExec("INSERT INTO `personal_infos` .*").
					WillReturnError(&mysql.MySQLError{
						Number: 1062,
					})
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrResumeDuplicate,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, err := gorm.Open(gormMysql.New(gormMysql.Config{
				Conn: tc.mock(t),
				// 如果为 false ，则GORM在初始化时，会先调用 show version
				SkipInitializeWithVersion: true,
			}), &gorm.Config{
				// 如果为 true ，则不允许 Ping数据库
				DisableAutomaticPing: true,
				// 如果为 false ，则即使是单一语句，也会开启事务
				SkipDefaultTransaction: true,
			})
			require.NoError(t, err)
			d := NewGORMResumeDAO(db)
			id, err := d.Save(tc.ctx, tc.r, tc.pi, nil, nil, nil, nil)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestGORMResumeDAO_List(t *testing.T) {
	testCases := []struct {
		name    string
		offset  int
		limit   int
		mock    func(t *testing.T) *sql.DB
		wantIds []int64
	}{
		{
			name:   "全量返回",
			offset: 0,
			limit:  0,
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "summary", "ctime", "utime"}).
					AddRow(1, "资深后端", 123, 123).
					AddRow(2, "资深前端", 123, 123)
				// 不分页的时候不能带 LIMIT 和 OFFSET
				mock.ExpectQuery("^SELECT \\* FROM `resumes` ORDER BY id asc$").
					WillReturnRows(rows)
				return mockDB
			},
			wantIds: []int64{1, 2},
		},
		{
			name:   "分页",
			offset: 1,
			limit:  2,
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "summary", "ctime", "utime"}).
					AddRow(2, "资深前端", 123, 123).
					AddRow(3, "资深测试", 123, 123)
				mock.ExpectQuery("^SELECT \\* FROM `resumes` ORDER BY id asc LIMIT \\? OFFSET \\?$").
					WillReturnRows(rows)
				return mockDB
			},
			wantIds: []int64{2, 3},
		},
		{
			name:   "只给 offset 不限制条数",
			offset: 1,
			limit:  0,
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "summary", "ctime", "utime"}).
					AddRow(2, "资深前端", 123, 123)
				// MySQL 不接受只有 OFFSET 没有 LIMIT 的语句，
				// 这条路径必须兜底一个 LIMIT
				mock.ExpectQuery("^SELECT \\* FROM `resumes` ORDER BY id asc LIMIT \\? OFFSET \\?$").
					WillReturnRows(rows)
				return mockDB
			},
			wantIds: []int64{2},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, err := gorm.Open(gormMysql.New(gormMysql.Config{
				Conn: tc.mock(t),
				// 如果为 false ，则GORM在初始化时，会先调用 show version
				SkipInitializeWithVersion: true,
			}), &gorm.Config{
				// 如果为 true ，则不允许 Ping数据库
				DisableAutomaticPing: true,
				// 如果为 false ，则即使是单一语句，也会开启事务
				SkipDefaultTransaction: true,
			})
			require.NoError(t, err)
			d := NewGORMResumeDAO(db)
			rs, err := d.List(context.Background(), tc.offset, tc.limit)
			require.NoError(t, err)
			ids := make([]int64, 0, len(rs))
			for _, r := range rs {
				ids = append(ids, r.Id)
			}
			assert.Equal(t, tc.wantIds, ids)
		})
	}
}

func TestGORMResumeDAO_Delete(t *testing.T) {
	testCases := []struct {
		name    string
		ctx     context.Context
		id      int64
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "删除成功",
			ctx:  context.Background(),
			id:   5,
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `resumes` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("DELETE FROM `personal_infos` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("DELETE FROM `work_experiences` .*").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec("DELETE FROM `projects` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("DELETE FROM `educations` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("DELETE FROM `resume_skills` .*").
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectCommit()
				return mockDB
			},
			wantErr: nil,
		},
		{
			name: "删除不存在的简历",
			ctx:  context.Background(),
			id:   100,
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `resumes` .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrDataNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, err := gorm.Open(gormMysql.New(gormMysql.Config{
				Conn: tc.mock(t),
				// 如果为 false ，则GORM在初始化时，会先调用 show version
				SkipInitializeWithVersion: true,
			}), &gorm.Config{
				// 如果为 true ，则不允许 Ping数据库
				DisableAutomaticPing: true,
				// 如果为 false ，则即使是单一语句，也会开启事务
				SkipDefaultTransaction: true,
			})
			require.NoError(t, err)
			d := NewGORMResumeDAO(db)
			err = d.Delete(tc.ctx, tc.id)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}
