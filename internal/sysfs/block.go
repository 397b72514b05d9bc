package sysfs

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// blockDevicePatterns lists where a block device can sit relative to a PCIe
// port's sysfs directory. SCSI/SATA disks hang off an intermediate target
// directory, NVMe namespaces off the nvme subsystem directory.
var blockDevicePatterns = []string{
	"*/block/*",
	"*/*/block/*",
	"*/*/*/block/*",
	"*/nvme/*/*",
}

// BlockDevice resolves the block device attached beneath a controller's
// sysfs path. Returns the kernel name (sda, nvme0n1) of the first match,
// or "" when no device is attached.
func BlockDevice(root string) string {
	for _, pattern := range blockDevicePatterns {
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			continue
		}
		for _, m := range matches {
			name := filepath.Base(m)
			// NVMe subsystem dirs contain non-namespace entries too
			if strings.Contains(pattern, "nvme") && !isNVMeNamespace(name) {
				continue
			}
			return name
		}
	}
	return ""
}

// isNVMeNamespace matches names like nvme0n1 but not nvme0 or firmware_rev.
func isNVMeNamespace(name string) bool {
	if !strings.HasPrefix(name, "nvme") {
		return false
	}
	rest := strings.TrimPrefix(name, "nvme")
	i := strings.IndexByte(rest, 'n')
	if i <= 0 {
		return false
	}
	_, errCtl := strconv.Atoi(rest[:i])
	_, errNS := strconv.Atoi(rest[i+1:])
	return errCtl == nil && errNS == nil
}

// DeviceSize returns the capacity in bytes of the named block device, read
// from /sys/block/<name>/size (512-byte sectors). Returns 0 when unknown.
func DeviceSize(name string) int64 {
	return DeviceSizeAt("/sys/block", name)
}

// DeviceSizeAt is DeviceSize against an alternate sysfs block root.
func DeviceSizeAt(blockRoot, name string) int64 {
	data, err := os.ReadFile(filepath.Join(blockRoot, name, "size"))
	if err != nil {
		return 0
	}
	sectors, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0
	}
	return sectors * 512
}
