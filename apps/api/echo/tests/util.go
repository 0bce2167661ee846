package tests

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	. "github.com/SaranshGupta02/TimeTable/apps/api/echo"
	"github.com/SaranshGupta02/TimeTable/core"
	"github.com/SaranshGupta02/TimeTable/core/timetable"
	"github.com/SaranshGupta02/TimeTable/core/user"
	dummymail "github.com/SaranshGupta02/TimeTable/services/email/dummy"
	logsvc "github.com/SaranshGupta02/TimeTable/services/logger"
	inmemdb "github.com/SaranshGupta02/TimeTable/storage/database/inmem"
)

var (
	usrSvc *user.Service
	ttSvc  *timetable.Service

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
	errNotAdmin     = forbiddenErr{Error: "admin access required", Reason: "not_admin"}
)

func setup(t *testing.T) Server {
	conf := &core.Config{
		AppName:            "Timetable",
		Env:                "TEST",
		TestMode:           true,
		SecretKey:          "s3cr3t-t3st-k3y",
		AllowedEmailDomain: "@nitkkr.ac.in",
		Server:             core.ServerConfig{JWTExpirationDelta: time.Hour},
	}

	// set up DB & services
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	usrSvc = user.NewService(inmemdb.NewUserRepository(db), dummymail.NewService())
	ttSvc = timetable.NewService(inmemdb.NewTimetableRepository(db))

	validate, translator := core.NewValidator(conf.AllowedEmailDomain)

	// set up server
	return NewServer(&Options{
		Conf:           conf,
		Logger:         logsvc.NewStdLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags)),
		DisableReqLogs: true,
		Validate:       validate,
		Translator:     translator,
		UserSvc:        usrSvc,
		TimetableSvc:   ttSvc,
	})
}

func createAdmin(t *testing.T) user.User {
	usr, err := usrSvc.CreateAdmin("admin@nitkkr.ac.in", "Admin", "Secret123")
	if err != nil {
		t.Fatalf("createAdmin() failed: %v", err)
	}
	return usr
}

func createProfessor(t *testing.T, email, name, department string, approved bool) user.User {
	usr, err := usrSvc.Register(user.NewUser{
		Email:           email,
		Name:            name,
		Department:      department,
		Password:        "Secret123",
		PasswordConfirm: "Secret123",
	})
	if err != nil {
		t.Fatalf("createProfessor() failed: %v", err)
	}
	if approved {
		if usr, err = usrSvc.SetApproved(usr.ID, true); err != nil {
			t.Fatalf("createProfessor() failed: %v", err)
		}
	}
	return usr
}

func createClass(t *testing.T, nc timetable.NewClass) timetable.ClassGrid {
	grid, err := ttSvc.CreateClass(nc)
	if err != nil {
		t.Fatalf("createClass() failed: %v", err)
	}
	return grid
}

type httpErr struct {
	Error string `json:"error"`
}

type forbiddenErr struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, usr user.User) string {
	claims := GetUserClaims(usr)
	token, err := GenerateToken(claims)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	if l1, ok := j1.([]interface{}); ok {
		if l2, ok := j2.([]interface{}); ok {
			return assert.ElementsMatch(t, l1, l2), nil
		}
	}
	return false, nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
