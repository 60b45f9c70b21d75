/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: permissions.go
Description: Permission knowledge base for APKScope. Fixed dangerous and
signature permission sets plus the BIND_ prefix heuristic, used to derive a
protection level from a permission name. The xmltree dump does not expose
protection levels, so derivation is the only source.
*/

package security

import (
	"strings"

	"github.com/kleascm/apkscope/pkg/manifest"
)

// dangerousPermissions are runtime permissions the platform gates behind a
// user prompt
var dangerousPermissions = permissionSet(
	"android.permission.READ_CALENDAR",
	"android.permission.WRITE_CALENDAR",
	"android.permission.CAMERA",
	"android.permission.READ_CONTACTS",
	"android.permission.WRITE_CONTACTS",
	"android.permission.GET_ACCOUNTS",
	"android.permission.ACCESS_FINE_LOCATION",
	"android.permission.ACCESS_COARSE_LOCATION",
	"android.permission.ACCESS_BACKGROUND_LOCATION",
	"android.permission.RECORD_AUDIO",
	"android.permission.READ_PHONE_STATE",
	"android.permission.READ_PHONE_NUMBERS",
	"android.permission.CALL_PHONE",
	"android.permission.ANSWER_PHONE_CALLS",
	"android.permission.READ_CALL_LOG",
	"android.permission.WRITE_CALL_LOG",
	"android.permission.ADD_VOICEMAIL",
	"android.permission.USE_SIP",
	"android.permission.PROCESS_OUTGOING_CALLS",
	"android.permission.BODY_SENSORS",
	"android.permission.SEND_SMS",
	"android.permission.RECEIVE_SMS",
	"android.permission.READ_SMS",
	"android.permission.RECEIVE_WAP_PUSH",
	"android.permission.RECEIVE_MMS",
	"android.permission.READ_EXTERNAL_STORAGE",
	"android.permission.WRITE_EXTERNAL_STORAGE",
	"android.permission.ACCESS_MEDIA_LOCATION",
	"android.permission.ACTIVITY_RECOGNITION",
	"android.permission.MANAGE_EXTERNAL_STORAGE",
)

// signaturePermissions are system-signature permissions a third-party app
// requesting them cannot normally hold
var signaturePermissions = permissionSet(
	"android.permission.WRITE_SETTINGS",
	"android.permission.WRITE_SECURE_SETTINGS",
	"android.permission.INSTALL_PACKAGES",
	"android.permission.DELETE_PACKAGES",
	"android.permission.SYSTEM_ALERT_WINDOW",
	"android.permission.MOUNT_UNMOUNT_FILESYSTEMS",
	"android.permission.READ_LOGS",
	"android.permission.REBOOT",
	"android.permission.SET_TIME",
	"android.permission.DEVICE_POWER",
	"android.permission.MANAGE_DEVICE_ADMINS",
)

func permissionSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// ClassifyPermission derives the protection level for a permission name.
// BIND_* permissions are service-binding guards and classify as signature.
func ClassifyPermission(name string) manifest.ProtectionLevel {
	if _, ok := dangerousPermissions[name]; ok {
		return manifest.ProtectionDangerous
	}
	if _, ok := signaturePermissions[name]; ok {
		return manifest.ProtectionSignature
	}
	if strings.Contains(name, ".BIND_") || strings.HasPrefix(name, "BIND_") {
		return manifest.ProtectionSignature
	}
	return manifest.ProtectionNormal
}
