package config

import "testing"

func TestDBConfigDSN(t *testing.T) {
	cases := []struct {
		name string
		cfg  DBConfig
		want string
	}{
		{
			name: "url wins",
			cfg:  DBConfig{URL: "postgres://u:p@db:5432/app", Host: "ignored", Name: "ignored"},
			want: "postgres://u:p@db:5432/app",
		},
		{
			name: "discrete parts with defaults",
			cfg:  DBConfig{Host: "localhost", User: "app", Password: "pw", Name: "career"},
			want: "host=localhost user=app password=pw dbname=career port=5432 sslmode=disable TimeZone=UTC",
		},
		{
			name: "nothing configured",
			cfg:  DBConfig{},
			want: "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.DSN(); got != tc.want {
				t.Fatalf("got=%q want=%q", got, tc.want)
			}
		})
	}
}
