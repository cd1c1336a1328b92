package httpx

import "net/http"

// Entity alert headers, JHipster style: clients watch
// X-{app}-alert for "{app}.{entity}.{verb}" and X-{app}-params for the
// entity id.

func EntityCreationAlert(w http.ResponseWriter, app, entity, id string) {
	setAlert(w, app, app+"."+entity+".created", id)
}

func EntityUpdateAlert(w http.ResponseWriter, app, entity, id string) {
	setAlert(w, app, app+"."+entity+".updated", id)
}

func EntityDeletionAlert(w http.ResponseWriter, app, entity, id string) {
	setAlert(w, app, app+"."+entity+".deleted", id)
}

func setAlert(w http.ResponseWriter, app, message, param string) {
	w.Header().Set("X-"+app+"-alert", message)
	w.Header().Set("X-"+app+"-params", param)
}
