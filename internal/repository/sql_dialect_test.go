package repository

import (
	"strings"
	"testing"
)

func TestBuildLocalizedLikeConditionSQLite(t *testing.T) {
	condition, argCount := buildLocalizedLikeConditionByDialect("sqlite", []string{"slug"}, []string{"name_json"})
	if argCount != 3 {
		t.Fatalf("arg count want 3 got %d", argCount)
	}
	if !strings.Contains(condition, "slug LIKE ?") {
		t.Fatalf("missing plain column condition: %s", condition)
	}
	if !strings.Contains(condition, `json_extract(name_json, '$."vi-VN"') LIKE ?`) {
		t.Fatalf("missing vi-VN json condition: %s", condition)
	}
	if !strings.Contains(condition, `json_extract(name_json, '$."en-US"') LIKE ?`) {
		t.Fatalf("missing en-US json condition: %s", condition)
	}
}

func TestBuildLocalizedLikeConditionPostgres(t *testing.T) {
	condition, argCount := buildLocalizedLikeConditionByDialect("postgres", []string{"slug"}, []string{"name_json"})
	if argCount != 3 {
		t.Fatalf("arg count want 3 got %d", argCount)
	}
	if !strings.Contains(condition, "slug ILIKE ?") {
		t.Fatalf("postgres should use ILIKE: %s", condition)
	}
	if !strings.Contains(condition, "(name_json::jsonb ->> 'vi-VN') ILIKE ?") {
		t.Fatalf("missing jsonb extraction: %s", condition)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs("%hoa%", 3)
	if len(args) != 3 {
		t.Fatalf("args len want 3 got %d", len(args))
	}
	for _, arg := range args {
		if arg != "%hoa%" {
			t.Fatalf("unexpected arg: %v", arg)
		}
	}
}
