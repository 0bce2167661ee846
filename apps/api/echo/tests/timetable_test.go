package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	echoapi "github.com/SaranshGupta02/TimeTable/apps/api/echo"
	"github.com/SaranshGupta02/TimeTable/core/timetable"
	"github.com/SaranshGupta02/TimeTable/core/user"
)

func Test_timetableApi_listClasses(t *testing.T) {
	app := setup(t)

	t.Run("empty", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, echoapi.ClassListResponse{Classes: []string{}})}
		req, rec := newRequest(http.MethodGet, "/v1/classes")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	createClass(t, timetable.NewClass{ID: "E102"})
	createClass(t, timetable.NewClass{ID: "E101"})

	t.Run("sorted ids, no auth needed", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, echoapi.ClassListResponse{Classes: []string{"E101", "E102"}})}
		req, rec := newRequest(http.MethodGet, "/v1/classes")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}

func Test_timetableApi_getTimetable(t *testing.T) {
	app := setup(t)

	createClass(t, timetable.NewClass{ID: "E101", Days: []string{"Monday", "Tuesday"}, PeriodCount: 2})

	t.Run("unknown class", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "class not found"})}
		req, rec := newRequest(http.MethodGet, "/v1/timetable/E999")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("full grid, no auth needed", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/timetable/E101")
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; wantCode %v", rec.Code, http.StatusOK)
		}
		var respData timetable.Timetable
		if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		if respData.ClassID != "E101" {
			t.Errorf("failed! classID = %v; want E101", respData.ClassID)
		}
		if len(respData.Grid) != 2 {
			t.Fatalf("failed! len(grid) = %d; want 2", len(respData.Grid))
		}
		for p, row := range respData.Grid {
			if len(row) != 2 {
				t.Fatalf("failed! len(grid[%d]) = %d; want 2", p, len(row))
			}
			for d, cell := range row {
				want := timetable.Cell{Department: timetable.DepartmentCommon}
				if cell != want {
					t.Errorf("failed! grid[%d][%d] = %v; want %v", p, d, cell, want)
				}
			}
		}
	})
}

func Test_timetableApi_createClass(t *testing.T) {
	app := setup(t)

	admin := createAdmin(t)
	prof := createProfessor(t, "jdoe@nitkkr.ac.in", "John Doe", "CSE", true)
	adminToken := getToken(t, admin)

	createClass(t, timetable.NewClass{ID: "E100"})

	tests := []httpTest{
		{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "Admin required", token: getToken(t, prof), wantCode: http.StatusForbidden,
			body:     marchallObj(t, timetable.NewClass{ID: "E101"}),
			wantData: marchallObj(t, errNotAdmin),
		},
		{
			name: "required fields", token: adminToken, wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"class_id": "this field is required"}),
		},
		{
			name: "invalid id", token: adminToken, wantCode: http.StatusBadRequest,
			body:     marchallObj(t, timetable.NewClass{ID: "E 101!"}),
			wantData: marchallObj(t, map[string]string{"class_id": "only alphanumeric characters and underscores are allowed"}),
		},
		{
			name: "label count mismatch", token: adminToken, wantCode: http.StatusBadRequest,
			body:     marchallObj(t, timetable.NewClass{ID: "E101", PeriodCount: 3, TimeLabels: []string{"9:00 - 10:00"}}),
			wantData: marchallObj(t, map[string]string{"time_labels": "expected 3 labels, one per period"}),
		},
		{
			name: "class exists", token: adminToken, wantCode: http.StatusConflict,
			body:     marchallObj(t, timetable.NewClass{ID: "E100"}),
			wantData: marchallObj(t, httpErr{Error: "a class with this id already exists"}),
		},
		{name: "created with defaults", token: adminToken, wantCode: http.StatusCreated, body: marchallObj(t, timetable.NewClass{ID: "E101"})},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/admin/classes"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)

			if tt.wantCode == http.StatusCreated {
				if rec.Code != tt.wantCode {
					t.Fatalf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
				}
				var respData timetable.ClassGrid
				if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
					t.Fatalf("json.Unmarshal() failed! err %v", err)
				}
				if respData.ID != "E101" {
					t.Errorf("failed! id = %v; want E101", respData.ID)
				}
				if respData.PeriodCount != timetable.DefaultPeriodCount {
					t.Errorf("failed! periodCount = %d; want %d", respData.PeriodCount, timetable.DefaultPeriodCount)
				}
				if len(respData.Days) != len(timetable.DefaultDays) {
					t.Errorf("failed! len(days) = %d; want %d", len(respData.Days), len(timetable.DefaultDays))
				}
				if len(respData.TimeLabels) != timetable.DefaultPeriodCount {
					t.Errorf("failed! len(timeLabels) = %d; want %d", len(respData.TimeLabels), timetable.DefaultPeriodCount)
				}
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_timetableApi_deleteClass(t *testing.T) {
	app := setup(t)

	admin := createAdmin(t)
	prof := createProfessor(t, "jdoe@nitkkr.ac.in", "John Doe", "CSE", true)
	adminToken := getToken(t, admin)

	createClass(t, timetable.NewClass{ID: "E101"})

	tests := []httpTest{
		{name: "Auth required", path: "/v1/admin/classes/E101", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "Admin required", path: "/v1/admin/classes/E101", token: getToken(t, prof),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errNotAdmin),
		},
		{
			name: "unknown class", path: "/v1/admin/classes/E999", token: adminToken,
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "class not found"}),
		},
		{name: "deleted", path: "/v1/admin/classes/E101", token: adminToken, wantCode: http.StatusNoContent},
		{
			name: "deleted only once", path: "/v1/admin/classes/E101", token: adminToken,
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "class not found"}),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodDelete

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)

			if tt.wantCode == http.StatusNoContent {
				if rec.Code != tt.wantCode {
					t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
				}
				if rec.Body.Len() > 0 {
					t.Errorf("failed! body = %v; want empty", rec.Body.String())
				}
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_timetableApi_writeSlot(t *testing.T) {
	app := setup(t)

	admin := createAdmin(t)
	profCSE := createProfessor(t, "jdoe@nitkkr.ac.in", "John Doe", "CSE", true)
	pending := createProfessor(t, "new@nitkkr.ac.in", "New Professor", "CSE", false)
	adminToken := getToken(t, admin)

	createClass(t, timetable.NewClass{ID: "E201", Days: []string{"Monday", "Tuesday"}, PeriodCount: 2})

	iPtr := func(i int) *int { return &i }
	sPtr := func(s string) *string { return &s }
	body := func(period, day int, ws timetable.WriteSlot) []byte {
		return marchallObj(t, echoapi.WriteSlotRequest{PeriodIndex: iPtr(period), DayIndex: iPtr(day), WriteSlot: ws})
	}
	slotResp := func(period, day int, department, subject string) []byte {
		return marchallObj(t, echoapi.WriteSlotResponse{OK: true, Slot: timetable.Slot{
			ClassID: "E201", Period: period, Day: day, Department: department, Subject: subject,
		}})
	}
	reqMsg := "this field is required"

	tests := []httpTest{
		{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "required fields", token: adminToken, wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"period_index": reqMsg, "day_index": reqMsg}),
		},
		{
			name: "empty payload", token: adminToken, wantCode: http.StatusBadRequest,
			body:     body(0, 0, timetable.WriteSlot{}),
			wantData: marchallObj(t, map[string]string{"subject": "either subject or department is required"}),
		},
		{
			name: "blank department", token: adminToken, wantCode: http.StatusBadRequest,
			body:     body(0, 0, timetable.WriteSlot{Department: sPtr("  ")}),
			wantData: marchallObj(t, map[string]string{"department": "department must not be blank"}),
		},
		{
			name: "slot out of shape", token: adminToken, wantCode: http.StatusNotFound,
			body:     body(7, 0, timetable.WriteSlot{Department: sPtr("CSE")}),
			wantData: marchallObj(t, httpErr{Error: "slot not found"}),
		},
		{
			name: "pending professor denied", token: getToken(t, pending), wantCode: http.StatusForbidden,
			body:     body(0, 0, timetable.WriteSlot{Subject: sPtr("Algorithms")}),
			wantData: marchallObj(t, forbiddenErr{Error: "your account is pending approval, read-only access", Reason: "pending_approval"}),
		},
		{
			name: "professor cannot assign department", token: getToken(t, profCSE), wantCode: http.StatusForbidden,
			body:     body(0, 0, timetable.WriteSlot{Department: sPtr("CSE")}),
			wantData: marchallObj(t, forbiddenErr{Error: "only admins can assign departments", Reason: "insufficient_role"}),
		},
		{
			name: "professor cannot edit unowned slot", token: getToken(t, profCSE), wantCode: http.StatusForbidden,
			body:     body(0, 0, timetable.WriteSlot{Subject: sPtr("Algorithms")}),
			wantData: marchallObj(t, forbiddenErr{Error: "only the assigned department can edit this slot", Reason: "wrong_department"}),
		},
		{
			name: "admin assigns department", token: adminToken, wantCode: http.StatusOK,
			body:     body(0, 0, timetable.WriteSlot{Department: sPtr("CSE")}),
			wantData: slotResp(0, 0, "CSE", ""),
		},
		{
			name: "professor fills owned slot", token: getToken(t, profCSE), wantCode: http.StatusOK,
			body:     body(0, 0, timetable.WriteSlot{Subject: sPtr("Algorithms")}),
			wantData: slotResp(0, 0, "CSE", "Algorithms"),
		},
		{
			name: "reassignment keeps subject", token: adminToken, wantCode: http.StatusOK,
			body:     body(0, 0, timetable.WriteSlot{Department: sPtr("ECE")}),
			wantData: slotResp(0, 0, "ECE", "Algorithms"),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPut
		tt.path = "/v1/timetable/E201/slot"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	// stale token: approval revoked after the token was issued still writes
	// until the professor re-authenticates
	t.Run("stale token snapshot wins", func(t *testing.T) {
		staleToken := getToken(t, profCSE)
		if _, err := usrSvc.SetApproved(profCSE.ID, false); err != nil {
			t.Fatalf("SetApproved() failed: %v", err)
		}
		adminActor := user.Actor{ID: admin.ID, Role: admin.Role, IsApproved: true}
		if _, err := ttSvc.WriteSlot(adminActor, "E201", 1, 0, timetable.WriteSlot{Department: sPtr("CSE")}); err != nil {
			t.Fatalf("WriteSlot() failed: %v", err)
		}

		tt := httpTest{
			wantCode: http.StatusOK,
			body:     body(1, 0, timetable.WriteSlot{Subject: sPtr("Data Structures")}),
			wantData: slotResp(1, 0, "CSE", "Data Structures"),
		}
		req, rec := newAuthRequest(http.MethodPut, "/v1/timetable/E201/slot", staleToken, tt.body)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}
