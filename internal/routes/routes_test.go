package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/c14220110/klinik-sentosa/internal/klinik/store"
	"github.com/c14220110/klinik-sentosa/pkg/logging"
	"github.com/c14220110/klinik-sentosa/pkg/storage/kv"
	"github.com/c14220110/klinik-sentosa/ws"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t     *testing.T
	e     *echo.Echo
	store *store.Store
}

func newTestServer(t *testing.T, opts ...store.Option) *testServer {
	t.Helper()
	wib := time.FixedZone("WIB", 7*60*60)
	base := []store.Option{
		store.WithLocation(wib),
		store.WithClock(func() time.Time { return time.Date(2026, 10, 17, 10, 0, 0, 0, wib) }),
	}
	s, err := store.New(kv.NewMemoryStore(), append(base, opts...)...)
	require.NoError(t, err)

	e := echo.New()
	Init(e, s, ws.NewHub(logging.Nop()), []byte("rahasia"), logging.Nop())
	return &testServer{t: t, e: e, store: s}
}

func (ts *testServer) do(method, path, token string, body interface{}) (int, envelope) {
	ts.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(ts.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(ts.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func (ts *testServer) login(role string) string {
	ts.t.Helper()
	code, env := ts.do(http.MethodPost, "/api/auth/login", "", map[string]string{"role": role})
	require.Equal(ts.t, http.StatusOK, code, env.Message)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(ts.t, json.Unmarshal(env.Data, &data))
	return data.Token
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

type visitJSON struct {
	ID            string `json:"id"`
	PatientID     string `json:"patientId"`
	Status        string `json:"status"`
	TotalCost     int64  `json:"totalCost"`
	PaymentMethod string `json:"paymentMethod"`
	Patient       struct {
		Name     string `json:"name"`
		MRNumber string `json:"mrNumber"`
	} `json:"patient"`
}

func TestVisitFlowOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	// pendaftaran
	token := ts.login("receptionist")
	code, env := ts.do(http.MethodPost, "/api/pasien/register", token, map[string]interface{}{
		"name": "Budi", "age": 45, "phone": "0812345678", "address": "Jl. Melati 5", "complaint": "demam",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	reg := decode[struct {
		Pasien struct {
			ID       string `json:"id"`
			MRNumber string `json:"mrNumber"`
		} `json:"pasien"`
		Kunjungan visitJSON `json:"kunjungan"`
	}](t, env.Data)
	assert.Equal(t, "RM-003", reg.Pasien.MRNumber)
	assert.Equal(t, "waiting", reg.Kunjungan.Status)
	visitID := reg.Kunjungan.ID

	// token lama tidak berlaku setelah peran diganti
	doctor := ts.login("doctor")
	code, _ = ts.do(http.MethodGet, "/api/pasien", token, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, env = ts.do(http.MethodGet, "/api/dokter/antrian", doctor, nil)
	require.Equal(t, http.StatusOK, code)
	queue := decode[[]visitJSON](t, env.Data)
	require.Len(t, queue, 1)
	assert.Equal(t, "Budi", queue[0].Patient.Name)

	code, env = ts.do(http.MethodPost, "/api/kunjungan/"+visitID+"/diagnosis", doctor, map[string]interface{}{
		"notes":         "Febris hari kedua",
		"prescriptions": []map[string]interface{}{{"medicine_id": "1", "dosage": "3x1", "quantity": 2}},
	})
	require.Equal(t, http.StatusOK, code, env.Message)
	v := decode[visitJSON](t, env.Data)
	assert.Equal(t, int64(60000), v.TotalCost)
	assert.Equal(t, "payment-pending", v.Status)

	// kasir
	cashier := ts.login("cashier")
	code, env = ts.do(http.MethodGet, "/api/kasir/antrian", cashier, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]visitJSON](t, env.Data), 1)

	code, env = ts.do(http.MethodPost, "/api/kasir/"+visitID+"/bayar", cashier, map[string]string{"method": "qris"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = ts.do(http.MethodPost, "/api/kasir/"+visitID+"/bayar", cashier, map[string]string{"method": "cash"})
	require.Equal(t, http.StatusOK, code, env.Message)
	v = decode[visitJSON](t, env.Data)
	assert.Equal(t, "completed", v.Status)
	assert.Equal(t, "cash", v.PaymentMethod)

	// dashboard pemilik
	admin := ts.login("admin")
	code, env = ts.do(http.MethodGet, "/api/dashboard", admin, nil)
	require.Equal(t, http.StatusOK, code)
	dash := decode[struct {
		Pendapatan struct {
			Total    int64 `json:"total"`
			Today    int64 `json:"today"`
			ByMethod struct {
				Cash int64 `json:"cash"`
			} `json:"byMethod"`
		} `json:"pendapatan"`
		PendapatanHarian []struct {
			Date  string `json:"date"`
			Total int64  `json:"total"`
		} `json:"pendapatan_harian"`
	}](t, env.Data)
	assert.Equal(t, int64(60000), dash.Pendapatan.Total)
	assert.Equal(t, int64(60000), dash.Pendapatan.Today)
	assert.Equal(t, int64(60000), dash.Pendapatan.ByMethod.Cash)
	require.Len(t, dash.PendapatanHarian, 7)
	assert.Equal(t, "2026-10-17", dash.PendapatanHarian[6].Date)

	code, env = ts.do(http.MethodGet, "/api/dashboard/kunjungan", admin, nil)
	require.Equal(t, http.StatusOK, code)
	rows := decode[[]struct {
		NamaPasien string `json:"nama_pasien"`
		Status     string `json:"status"`
	}](t, env.Data)
	require.Len(t, rows, 1)
	assert.Equal(t, "Budi", rows[0].NamaPasien)

	// kunjungan yang sudah lunas tidak bisa didiagnosis ulang
	doctor = ts.login("doctor")
	code, _ = ts.do(http.MethodPost, "/api/kunjungan/"+visitID+"/diagnosis", doctor, map[string]interface{}{
		"notes": "Revisi diagnosis setelah bayar",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, int64(60000), ts.store.Revenue().Total)
}

func TestDashboardKunjunganLimit(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.login("admin")

	for _, limit := range []string{"0", "abc", "201", "9223372036854775807"} {
		code, env := ts.do(http.MethodGet, "/api/dashboard/kunjungan?limit="+limit, admin, nil)
		assert.Equal(t, http.StatusBadRequest, code, limit)
		assert.Equal(t, "invalid limit", env.Message)
	}

	_, err := ts.store.CreateVisit("p1", "kontrol")
	require.NoError(t, err)
	code, env := ts.do(http.MethodGet, "/api/dashboard/kunjungan?limit=200", admin, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]struct{ ID string }](t, env.Data), 1)
}

func TestPharmacyFlowOverHTTP(t *testing.T) {
	ts := newTestServer(t, store.WithPharmacyStage(true))
	v, err := ts.store.CreateVisit("p2", "batuk berdahak")
	require.NoError(t, err)

	doctor := ts.login("doctor")
	code, env := ts.do(http.MethodPut, "/api/kunjungan/"+v.ID+"/mulai", doctor, nil)
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.Equal(t, "in-consultation", decode[visitJSON](t, env.Data).Status)

	code, _ = ts.do(http.MethodPut, "/api/kunjungan/"+v.ID+"/mulai", doctor, nil)
	assert.Equal(t, http.StatusConflict, code)

	code, env = ts.do(http.MethodPost, "/api/kunjungan/"+v.ID+"/diagnosis", doctor, map[string]interface{}{
		"notes":         "Bronkitis akut ringan",
		"prescriptions": []map[string]interface{}{{"medicine_id": "5", "dosage": "3x1", "quantity": 1}},
	})
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.Equal(t, "pharmacy-queue", decode[visitJSON](t, env.Data).Status)

	pharmacist := ts.login("pharmacist")
	code, env = ts.do(http.MethodGet, "/api/apotek/antrian", pharmacist, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]visitJSON](t, env.Data), 1)

	code, env = ts.do(http.MethodPut, "/api/apotek/"+v.ID+"/selesai", pharmacist, nil)
	require.Equal(t, http.StatusOK, code, env.Message)
	got := decode[visitJSON](t, env.Data)
	assert.Equal(t, "payment-pending", got.Status)
	assert.Equal(t, int64(75000), got.TotalCost)
}

func TestValidationAndNotFound(t *testing.T) {
	ts := newTestServer(t)

	code, _ := ts.do(http.MethodPost, "/api/auth/login", "", map[string]string{"role": "owner"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = ts.do(http.MethodGet, "/api/dokter/antrian", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	token := ts.login("receptionist")
	code, env := ts.do(http.MethodPost, "/api/pasien/register", token, map[string]interface{}{
		"name": "Budi", "age": 45, "phone": "0812", "address": "Jl. Melati 5", "complaint": "demam",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Nomor HP minimal 10 digit", env.Message)

	code, _ = ts.do(http.MethodPost, "/api/kunjungan", token, map[string]string{"patient_id": "ghost", "complaint": "pusing sekali"})
	assert.Equal(t, http.StatusNotFound, code)

	code, env = ts.do(http.MethodPost, "/api/kunjungan", token, map[string]string{"patient_id": "p1", "complaint": "kontrol gula darah"})
	require.Equal(t, http.StatusCreated, code, env.Message)

	code, env = ts.do(http.MethodGet, "/api/pasien?q=siti", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]struct{ ID string }](t, env.Data), 1)

	doctor := ts.login("doctor")
	code, _ = ts.do(http.MethodPost, "/api/kunjungan/nope/diagnosis", doctor, map[string]interface{}{"notes": "Catatan yang cukup panjang"})
	assert.Equal(t, http.StatusNotFound, code)

	visitID := ts.store.Visits()[0].ID
	code, _ = ts.do(http.MethodPost, "/api/kunjungan/"+visitID+"/diagnosis", doctor, map[string]interface{}{
		"notes":         "Catatan yang cukup panjang",
		"prescriptions": []map[string]interface{}{{"medicine_id": "99", "dosage": "1x1", "quantity": 1}},
	})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = ts.do(http.MethodPut, "/api/kunjungan/"+visitID+"/status", doctor, map[string]string{"status": "done"})
	assert.Equal(t, http.StatusBadRequest, code)
	code, env = ts.do(http.MethodPut, "/api/kunjungan/"+visitID+"/status", doctor, map[string]string{"status": "in-consultation"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "in-consultation", decode[visitJSON](t, env.Data).Status)

	code, env = ts.do(http.MethodGet, "/api/obat?q=amox", doctor, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]struct{ ID string }](t, env.Data), 1)
}

func TestDanglingVisitSurfacesAsNotFound(t *testing.T) {
	ts := newTestServer(t)
	_, err := ts.store.CreateVisit("ghost", "pusing")
	require.NoError(t, err)

	doctor := ts.login("doctor")
	code, env := ts.do(http.MethodGet, "/api/dokter/antrian", doctor, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, env.Message, "patient not found")
}

func TestSessionAndLogout(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login("cashier")

	code, env := ts.do(http.MethodGet, "/api/auth/session", token, nil)
	require.Equal(t, http.StatusOK, code)
	sess := decode[struct {
		Role string `json:"role"`
		Menu []struct {
			Label string `json:"label"`
		} `json:"menu"`
	}](t, env.Data)
	assert.Equal(t, "cashier", sess.Role)
	require.Len(t, sess.Menu, 1)
	assert.Equal(t, "Pembayaran", sess.Menu[0].Label)

	code, _ = ts.do(http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = ts.do(http.MethodGet, "/api/kasir/antrian", token, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}
