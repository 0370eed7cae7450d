package validation_test

import (
	"strings"
	"testing"

	"github.com/uushop/shopping-list-go/internal/validation"
)

func containsDetail(details []string, want string) bool {
	for _, d := range details {
		if d == want {
			return true
		}
	}
	return false
}

// TestCheckValidInput verifies a well-formed DtoIn produces no details
func TestCheckValidInput(t *testing.T) {
	dtoIn := validation.UserCreateDtoIn{
		Email: "jane.doe@example.com",
		Name:  validation.UserCreateName{First: "Jane", Last: "Doe"},
	}

	if details := validation.Check(&dtoIn); len(details) != 0 {
		t.Errorf("Expected no validation details, got %v", details)
	}
}

// TestCheckIsExhaustive verifies every failing field is reported, not just
// the first one
func TestCheckIsExhaustive(t *testing.T) {
	dtoIn := validation.UserCreateDtoIn{
		Email: "not-an-email",
		Name:  validation.UserCreateName{First: "Jane"},
	}

	details := validation.Check(&dtoIn)
	if len(details) != 2 {
		t.Fatalf("Expected 2 validation details, got %d: %v", len(details), details)
	}
	if !containsDetail(details, `"email" must be a valid email`) {
		t.Errorf("Missing email detail in %v", details)
	}
	if !containsDetail(details, `"name.last" is required`) {
		t.Errorf("Missing name.last detail in %v", details)
	}
}

// TestFieldsReportedByWireName verifies details use json/query names
func TestFieldsReportedByWireName(t *testing.T) {
	dtoIn := validation.MembershipAddUserDtoIn{Role: "admin"}

	details := validation.Check(&dtoIn)
	for _, d := range details {
		if strings.Contains(d, "ListID") || strings.Contains(d, "UserID") {
			t.Errorf("Detail uses Go field name instead of wire name: %s", d)
		}
	}
	if !containsDetail(details, `"listId" is required`) {
		t.Errorf("Missing listId detail in %v", details)
	}
	if !containsDetail(details, `"role" must be one of [owner editor viewer]`) {
		t.Errorf("Missing role detail in %v", details)
	}
}

// TestPaginationDefaults verifies listMy defaults apply only for absent fields
func TestPaginationDefaults(t *testing.T) {
	var dtoIn validation.ShoppingListListMyDtoIn
	if details := validation.Check(&dtoIn); len(details) != 0 {
		t.Fatalf("Empty pagination input should be valid, got %v", details)
	}
	pageIndex, pageSize := dtoIn.Defaults()
	if pageIndex != 0 || pageSize != 50 {
		t.Errorf("Expected defaults 0/50, got %d/%d", pageIndex, pageSize)
	}

	two, ten := 2, 10
	dtoIn = validation.ShoppingListListMyDtoIn{PageIndex: &two, PageSize: &ten}
	if details := validation.Check(&dtoIn); len(details) != 0 {
		t.Fatalf("Explicit pagination input should be valid, got %v", details)
	}
	pageIndex, pageSize = dtoIn.Defaults()
	if pageIndex != 2 || pageSize != 10 {
		t.Errorf("Expected explicit 2/10, got %d/%d", pageIndex, pageSize)
	}
}

// TestPageSizeBounds verifies the documented pageSize ceiling
func TestPageSizeBounds(t *testing.T) {
	tooBig := 101
	dtoIn := validation.ShoppingListListMyDtoIn{PageSize: &tooBig}

	details := validation.Check(&dtoIn)
	if !containsDetail(details, `"pageSize" must be at most 100`) {
		t.Errorf("Expected pageSize bound detail, got %v", details)
	}
}

// TestQuantityConstraints verifies the nested quantity schema
func TestQuantityConstraints(t *testing.T) {
	dtoIn := validation.ListItemCreateDtoIn{
		ListID:   "list-1",
		Name:     "Milk",
		Quantity: &validation.QuantityDtoIn{Value: -1, Unit: "l"},
	}

	details := validation.Check(&dtoIn)
	if !containsDetail(details, `"quantity.value" must be greater than 0`) {
		t.Errorf("Expected quantity.value detail, got %v", details)
	}

	dtoIn.Quantity = nil
	if details := validation.Check(&dtoIn); len(details) != 0 {
		t.Errorf("Absent quantity should be valid, got %v", details)
	}
}

// TestCheckRequiresExplicitFalse verifies isChecked=false passes through the
// pointer field instead of failing required
func TestCheckRequiresExplicitFalse(t *testing.T) {
	unchecked := false
	dtoIn := validation.ListItemCheckDtoIn{ID: "item-1", IsChecked: &unchecked}
	if details := validation.Check(&dtoIn); len(details) != 0 {
		t.Errorf("isChecked=false should be valid, got %v", details)
	}

	dtoIn.IsChecked = nil
	details := validation.Check(&dtoIn)
	if !containsDetail(details, `"isChecked" is required`) {
		t.Errorf("Expected isChecked required detail, got %v", details)
	}
}

// TestListItemListDefaults verifies sort and filter defaults
func TestListItemListDefaults(t *testing.T) {
	dtoIn := validation.ListItemListDtoIn{ListID: "list-1"}
	if details := validation.Check(&dtoIn); len(details) != 0 {
		t.Fatalf("Minimal listItem.list input should be valid, got %v", details)
	}
	sort, onlyUnchecked := dtoIn.Defaults()
	if sort != "position" || onlyUnchecked {
		t.Errorf("Expected defaults position/false, got %s/%v", sort, onlyUnchecked)
	}

	dtoIn.Sort = "alphabetical"
	details := validation.Check(&dtoIn)
	if !containsDetail(details, `"sort" must be one of [position createdAt checked]`) {
		t.Errorf("Expected sort oneof detail, got %v", details)
	}
}
