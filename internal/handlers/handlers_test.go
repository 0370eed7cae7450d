package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/uushop/shopping-list-go/internal/handlers"
	"github.com/uushop/shopping-list-go/internal/middleware"
	"github.com/uushop/shopping-list-go/internal/storage"
)

// setupApp builds the command surface on an in-memory store with
// trusted-header identity, mirroring the server wiring
func setupApp() *fiber.App {
	store := storage.NewMemoryStore()

	app := fiber.New()
	app.Use(middleware.ResolveIdentity(nil))

	userHandler := &handlers.UserHandler{Store: store}
	listHandler := &handlers.ShoppingListHandler{Store: store}
	membershipHandler := &handlers.MembershipHandler{Store: store}
	itemHandler := &handlers.ListItemHandler{Store: store}

	anyProfile := middleware.Authorize(
		middleware.ProfileAuthorities, middleware.ProfileUser, middleware.ProfileViewer)
	writeProfile := middleware.Authorize(
		middleware.ProfileAuthorities, middleware.ProfileUser)
	authoritiesOnly := middleware.Authorize(middleware.ProfileAuthorities)

	app.Post("/user/create", authoritiesOnly, userHandler.CreateUser)
	app.Get("/user/get", anyProfile, userHandler.GetUser)
	app.Post("/shoppingList/create", writeProfile, listHandler.CreateShoppingList)
	app.Get("/shoppingList/get", anyProfile, listHandler.GetShoppingList)
	app.Get("/shoppingList/listMy", anyProfile, listHandler.ListMyShoppingLists)
	app.Post("/shoppingList/update", writeProfile, listHandler.UpdateShoppingList)
	app.Post("/shoppingList/delete", writeProfile, listHandler.DeleteShoppingList)
	app.Post("/membership/addUser", writeProfile, membershipHandler.AddUserToList)
	app.Get("/membership/getListMembers", anyProfile, membershipHandler.GetListMembers)
	app.Post("/listItem/create", writeProfile, itemHandler.CreateListItem)
	app.Post("/listItem/check", writeProfile, itemHandler.CheckListItem)
	app.Get("/listItem/list", anyProfile, itemHandler.ListListItems)

	return app
}

// call executes a command as the given caller and decodes the JSON body
func call(t *testing.T, app *fiber.App, method, target, profile, userID string,
	body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if profile != "" {
		req.Header.Set(middleware.HeaderProfile, profile)
		req.Header.Set(middleware.HeaderIdentity, userID)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute %s %s: %v", method, target, err)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response of %s %s: %v", method, target, err)
	}
	return resp.StatusCode, result
}

func errorMap(t *testing.T, result map[string]interface{}) map[string]interface{} {
	t.Helper()
	m, ok := result["uuAppErrorMap"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected uuAppErrorMap in response, got %v", result)
	}
	return m
}

func requireCode(t *testing.T, result map[string]interface{}, code string) map[string]interface{} {
	t.Helper()
	entry, ok := errorMap(t, result)[code].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected %q in uuAppErrorMap, got %v", code, result)
	}
	return entry
}

func createList(t *testing.T, app *fiber.App, ownerID, title string) string {
	t.Helper()
	status, result := call(t, app, "POST", "/shoppingList/create",
		middleware.ProfileUser, ownerID, fiber.Map{"title": title})
	if status != 200 {
		t.Fatalf("Failed to create list %s: %d %v", title, status, result)
	}
	return result["id"].(string)
}

func createItem(t *testing.T, app *fiber.App, userID, listID, name string) map[string]interface{} {
	t.Helper()
	status, result := call(t, app, "POST", "/listItem/create",
		middleware.ProfileUser, userID, fiber.Map{"listId": listID, "name": name})
	if status != 200 {
		t.Fatalf("Failed to create item %s: %d %v", name, status, result)
	}
	return result
}

func TestUserCreateAndDuplicateEmail(t *testing.T) {
	app := setupApp()

	body := fiber.Map{
		"email": "jane.doe@example.com",
		"name":  fiber.Map{"first": "Jane", "last": "Doe"},
	}

	status, result := call(t, app, "POST", "/user/create",
		middleware.ProfileAuthorities, "admin-1", body)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d: %v", status, result)
	}
	if result["email"] != "jane.doe@example.com" {
		t.Errorf("Unexpected email in response: %v", result["email"])
	}
	name, _ := result["name"].(map[string]interface{})
	if name["full"] != "Jane Doe" {
		t.Errorf("Expected full name 'Jane Doe', got %v", name["full"])
	}
	if len(errorMap(t, result)) != 0 {
		t.Errorf("Expected empty uuAppErrorMap on success, got %v", result)
	}

	status, result = call(t, app, "POST", "/user/create",
		middleware.ProfileAuthorities, "admin-1", body)
	if status != 400 {
		t.Fatalf("Expected status 400 on duplicate email, got %d", status)
	}
	requireCode(t, result, "userCreate/emailNotUnique")
}

func TestUserCreateInvalidDtoIn(t *testing.T) {
	app := setupApp()

	status, result := call(t, app, "POST", "/user/create",
		middleware.ProfileAuthorities, "admin-1",
		fiber.Map{"email": "not-an-email", "name": fiber.Map{"first": "Jane"}})
	if status != 400 {
		t.Fatalf("Expected status 400, got %d: %v", status, result)
	}

	entry := requireCode(t, result, "userCreate/invalidDtoIn")
	if entry["message"] != "DtoIn is not valid." {
		t.Errorf("Unexpected message: %v", entry["message"])
	}
	details, _ := entry["details"].([]interface{})
	if len(details) != 2 {
		t.Errorf("Expected 2 validation details, got %v", details)
	}
}

func TestUserCreateRequiresAuthorities(t *testing.T) {
	app := setupApp()

	status, result := call(t, app, "POST", "/user/create",
		middleware.ProfileUser, "user-1",
		fiber.Map{"email": "x@example.com", "name": fiber.Map{"first": "X", "last": "Y"}})
	if status != 403 {
		t.Fatalf("Expected status 403, got %d", status)
	}
	requireCode(t, result, "system/unauthorized")
}

func TestUserGetMissing(t *testing.T) {
	app := setupApp()

	status, result := call(t, app, "GET", "/user/get?id=missing",
		middleware.ProfileViewer, "viewer-1", nil)
	if status != 404 {
		t.Fatalf("Expected status 404, got %d", status)
	}
	requireCode(t, result, "userGet/userDoesNotExist")
}

func TestShoppingListCreateAddsOwnerMembership(t *testing.T) {
	app := setupApp()

	listID := createList(t, app, "user-1", "Groceries")

	status, result := call(t, app, "GET",
		fmt.Sprintf("/membership/getListMembers?listId=%s", listID),
		middleware.ProfileUser, "user-1", nil)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d: %v", status, result)
	}

	members, _ := result["members"].([]interface{})
	if len(members) != 1 {
		t.Fatalf("Expected exactly the owner membership, got %v", members)
	}
	owner, _ := members[0].(map[string]interface{})
	if owner["userId"] != "user-1" || owner["role"] != "owner" {
		t.Errorf("Unexpected owner membership: %v", owner)
	}
}

func TestShoppingListGetMissing(t *testing.T) {
	app := setupApp()

	status, result := call(t, app, "GET", "/shoppingList/get?id=no-such-list",
		middleware.ProfileUser, "user-1", nil)
	if status != 404 {
		t.Fatalf("Expected status 404, got %d", status)
	}
	entry := requireCode(t, result, "shoppingListGet/listDoesNotExist")
	if entry["severity"] != "error" {
		t.Errorf("Expected severity error, got %v", entry["severity"])
	}
}

func TestShoppingListUpdateByNonOwner(t *testing.T) {
	app := setupApp()

	listID := createList(t, app, "user-1", "Groceries")

	status, result := call(t, app, "POST", "/shoppingList/update",
		middleware.ProfileUser, "user-2",
		fiber.Map{"id": listID, "title": "Hijacked"})
	if status != 403 {
		t.Fatalf("Expected status 403, got %d: %v", status, result)
	}
	requireCode(t, result, "system/unauthorized")

	// The elevated profile may update any list
	status, result = call(t, app, "POST", "/shoppingList/update",
		middleware.ProfileAuthorities, "admin-1",
		fiber.Map{"id": listID, "title": "Renamed"})
	if status != 200 {
		t.Fatalf("Expected status 200 for Authorities, got %d: %v", status, result)
	}
	if result["title"] != "Renamed" {
		t.Errorf("Expected updated title, got %v", result["title"])
	}
}

func TestShoppingListUpdatePartial(t *testing.T) {
	app := setupApp()

	listID := createList(t, app, "user-1", "Groceries")

	status, result := call(t, app, "POST", "/shoppingList/update",
		middleware.ProfileUser, "user-1",
		fiber.Map{"id": listID, "description": "weekly shop"})
	if status != 200 {
		t.Fatalf("Expected status 200, got %d: %v", status, result)
	}
	if result["title"] != "Groceries" {
		t.Errorf("Absent title must stay untouched, got %v", result["title"])
	}
	if result["description"] != "weekly shop" {
		t.Errorf("Expected updated description, got %v", result["description"])
	}
}

func TestShoppingListDeleteCascades(t *testing.T) {
	app := setupApp()

	listID := createList(t, app, "user-1", "Groceries")

	status, result := call(t, app, "POST", "/shoppingList/delete",
		middleware.ProfileUser, "user-2", fiber.Map{"id": listID})
	if status != 403 {
		t.Fatalf("Expected status 403 for non-owner delete, got %d", status)
	}

	status, result = call(t, app, "POST", "/shoppingList/delete",
		middleware.ProfileUser, "user-1", fiber.Map{"id": listID})
	if status != 200 {
		t.Fatalf("Expected status 200, got %d: %v", status, result)
	}
	if result["id"] != listID {
		t.Errorf("Expected the deleted list in the response, got %v", result)
	}

	status, _ = call(t, app, "GET", "/shoppingList/get?id="+listID,
		middleware.ProfileUser, "user-1", nil)
	if status != 404 {
		t.Errorf("Expected 404 after delete, got %d", status)
	}

	status, result = call(t, app, "GET",
		"/membership/getListMembers?listId="+listID,
		middleware.ProfileUser, "user-1", nil)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}
	if members, _ := result["members"].([]interface{}); len(members) != 0 {
		t.Errorf("Expected memberships to be removed with the list, got %v", members)
	}
}

func TestShoppingListListMyPagination(t *testing.T) {
	app := setupApp()

	for _, title := range []string{"Groceries", "Hardware", "Party"} {
		createList(t, app, "user-1", title)
	}
	createList(t, app, "user-2", "Someone else's")

	status, result := call(t, app, "GET", "/shoppingList/listMy?pageSize=2",
		middleware.ProfileUser, "user-1", nil)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d: %v", status, result)
	}
	itemList, _ := result["itemList"].([]interface{})
	pageInfo, _ := result["pageInfo"].(map[string]interface{})
	if len(itemList) != 2 {
		t.Errorf("Expected 2 entries on page 0, got %d", len(itemList))
	}
	if pageInfo["total"] != float64(3) {
		t.Errorf("Expected total 3, got %v", pageInfo["total"])
	}
	first, _ := itemList[0].(map[string]interface{})
	if first["role"] != "owner" {
		t.Errorf("Expected caller's role in summary, got %v", first)
	}

	status, result = call(t, app, "GET", "/shoppingList/listMy?pageIndex=1&pageSize=2",
		middleware.ProfileUser, "user-1", nil)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}
	itemList, _ = result["itemList"].([]interface{})
	pageInfo, _ = result["pageInfo"].(map[string]interface{})
	if len(itemList) != 1 {
		t.Errorf("Expected 1 entry on page 1, got %d", len(itemList))
	}
	// Total stays the same on every page
	if pageInfo["total"] != float64(3) {
		t.Errorf("Expected total 3 on page 1, got %v", pageInfo["total"])
	}
}

func TestMembershipAddUserDuplicate(t *testing.T) {
	app := setupApp()

	listID := createList(t, app, "user-1", "Groceries")

	body := fiber.Map{"listId": listID, "userId": "user-2", "role": "editor"}
	status, result := call(t, app, "POST", "/membership/addUser",
		middleware.ProfileUser, "user-1", body)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d: %v", status, result)
	}
	if result["role"] != "editor" {
		t.Errorf("Unexpected membership in response: %v", result)
	}

	status, result = call(t, app, "POST", "/membership/addUser",
		middleware.ProfileUser, "user-1", body)
	if status != 400 {
		t.Fatalf("Expected status 400 on duplicate membership, got %d", status)
	}
	entry := requireCode(t, result, "membershipAddUser/alreadyMember")
	if entry["message"] != "User is already member of this list." {
		t.Errorf("Unexpected message: %v", entry["message"])
	}
}

func TestMembershipAddUserMissingList(t *testing.T) {
	app := setupApp()

	status, result := call(t, app, "POST", "/membership/addUser",
		middleware.ProfileUser, "user-1",
		fiber.Map{"listId": "no-such-list", "userId": "user-2", "role": "viewer"})
	if status != 404 {
		t.Fatalf("Expected status 404, got %d: %v", status, result)
	}
	requireCode(t, result, "membershipAddUser/listDoesNotExist")
}

func TestListItemPositionsDefaultToAppend(t *testing.T) {
	app := setupApp()

	listID := createList(t, app, "user-1", "Groceries")

	first := createItem(t, app, "user-1", listID, "Milk")
	if first["position"] != float64(0) {
		t.Errorf("Expected first item at position 0, got %v", first["position"])
	}
	if first["createdBy"] != "user-1" {
		t.Errorf("Expected createdBy user-1, got %v", first["createdBy"])
	}

	second := createItem(t, app, "user-1", listID, "Bread")
	if second["position"] != float64(1) {
		t.Errorf("Expected second item at position 1, got %v", second["position"])
	}
}

func TestListItemCreateMissingList(t *testing.T) {
	app := setupApp()

	status, result := call(t, app, "POST", "/listItem/create",
		middleware.ProfileUser, "user-1",
		fiber.Map{"listId": "no-such-list", "name": "Milk"})
	if status != 404 {
		t.Fatalf("Expected status 404, got %d: %v", status, result)
	}
	requireCode(t, result, "listItemCreate/listDoesNotExist")
}

func TestListItemCheckAndUncheck(t *testing.T) {
	app := setupApp()

	listID := createList(t, app, "user-1", "Groceries")
	item := createItem(t, app, "user-1", listID, "Milk")
	itemID := item["id"].(string)
	if item["checkedBy"] != nil {
		t.Fatalf("New item must not carry checkedBy, got %v", item["checkedBy"])
	}

	status, result := call(t, app, "POST", "/listItem/check",
		middleware.ProfileUser, "user-2",
		fiber.Map{"id": itemID, "isChecked": true})
	if status != 200 {
		t.Fatalf("Expected status 200, got %d: %v", status, result)
	}
	if result["isChecked"] != true || result["checkedBy"] != "user-2" {
		t.Errorf("Expected checked by user-2, got %v", result)
	}

	// Checking an already-checked item is idempotent
	status, result = call(t, app, "POST", "/listItem/check",
		middleware.ProfileUser, "user-2",
		fiber.Map{"id": itemID, "isChecked": true})
	if status != 200 || result["isChecked"] != true {
		t.Errorf("Expected idempotent re-check, got %d %v", status, result)
	}

	status, result = call(t, app, "POST", "/listItem/check",
		middleware.ProfileUser, "user-1",
		fiber.Map{"id": itemID, "isChecked": false})
	if status != 200 {
		t.Fatalf("Expected status 200, got %d: %v", status, result)
	}
	if result["isChecked"] != false || result["checkedBy"] != nil {
		t.Errorf("Unchecking must clear checkedBy, got %v", result)
	}
}

func TestListItemCheckMissingItem(t *testing.T) {
	app := setupApp()

	status, result := call(t, app, "POST", "/listItem/check",
		middleware.ProfileUser, "user-1",
		fiber.Map{"id": "no-such-item", "isChecked": true})
	if status != 404 {
		t.Fatalf("Expected status 404, got %d: %v", status, result)
	}
	requireCode(t, result, "listItemCheck/itemDoesNotExist")
}

func TestListItemListFilterAndSort(t *testing.T) {
	app := setupApp()

	listID := createList(t, app, "user-1", "Groceries")
	milk := createItem(t, app, "user-1", listID, "Milk")
	createItem(t, app, "user-1", listID, "Bread")
	createItem(t, app, "user-1", listID, "Eggs")

	status, _ := call(t, app, "POST", "/listItem/check",
		middleware.ProfileUser, "user-1",
		fiber.Map{"id": milk["id"], "isChecked": true})
	if status != 200 {
		t.Fatalf("Failed to check item: %d", status)
	}

	status, result := call(t, app, "GET",
		"/listItem/list?listId="+listID+"&onlyUnchecked=true",
		middleware.ProfileViewer, "viewer-1", nil)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d: %v", status, result)
	}
	items, _ := result["items"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("Expected 2 unchecked items, got %d", len(items))
	}
	for _, raw := range items {
		entry, _ := raw.(map[string]interface{})
		if entry["isChecked"] != false {
			t.Errorf("Checked item in unchecked-only listing: %v", entry)
		}
	}

	status, result = call(t, app, "GET",
		"/listItem/list?listId="+listID+"&sort=checked",
		middleware.ProfileViewer, "viewer-1", nil)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d: %v", status, result)
	}
	items, _ = result["items"].([]interface{})
	if len(items) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(items))
	}
	last, _ := items[len(items)-1].(map[string]interface{})
	if last["name"] != "Milk" {
		t.Errorf("Expected the checked item last in checked sort, got %v", last["name"])
	}
}

func TestListItemListInvalidSort(t *testing.T) {
	app := setupApp()

	status, result := call(t, app, "GET",
		"/listItem/list?listId=list-1&sort=alphabetical",
		middleware.ProfileUser, "user-1", nil)
	if status != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d: %v", status, result)
	}
	requireCode(t, result, "listItemList/invalidDtoIn")
}

func TestUnknownBodyFieldsAreIgnored(t *testing.T) {
	app := setupApp()

	status, result := call(t, app, "POST", "/shoppingList/create",
		middleware.ProfileUser, "user-1",
		fiber.Map{"title": "Groceries", "color": "green"})
	if status != 200 {
		t.Fatalf("Expected unknown fields to be ignored, got %d: %v", status, result)
	}
	if result["title"] != "Groceries" {
		t.Errorf("Unexpected title: %v", result["title"])
	}
}
