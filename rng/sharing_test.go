//go:build unix

// Package rng provides cryptographically secure random bytes sourced
// directly from the operating system.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package rng

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestDeviceSharing(t *testing.T) {
	gomega.RegisterFailHandler(Fail)
	RunSpecs(t, t.Name())
}

var _ = Describe("device sharing", func() {
	var dev *device

	BeforeEach(func() {
		path := filepath.Join(GinkgoT().TempDir(), "urandom")
		err := os.WriteFile(path, make([]byte, 1024), 0o600)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		dev = &device{path: path}
	})

	It("should share a single descriptor among all holders", func() {
		s1, err := newDeviceSource(dev)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		s2, err := newDeviceSource(dev)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		s3, err := newDeviceSource(dev)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(dev.refs).To(gomega.Equal(3))
		gomega.Expect(dev.fh).NotTo(gomega.BeNil())
		gomega.Expect(s1.(*deviceSource).fh).To(gomega.Equal(s2.(*deviceSource).fh))
		gomega.Expect(s2.(*deviceSource).fh).To(gomega.Equal(s3.(*deviceSource).fh))

		s1.close()
		s2.close()
		gomega.Expect(dev.refs).To(gomega.Equal(1))
		gomega.Expect(dev.fh).NotTo(gomega.BeNil())

		s3.close()
		gomega.Expect(dev.refs).To(gomega.Equal(0))
		gomega.Expect(dev.fh).To(gomega.BeNil())
	})

	It("should reopen after the last holder releases", func() {
		s1, err := newDeviceSource(dev)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		s1.close()
		gomega.Expect(dev.fh).To(gomega.BeNil())

		s2, err := newDeviceSource(dev)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		defer s2.close()
		gomega.Expect(dev.refs).To(gomega.Equal(1))
		gomega.Expect(dev.fh).NotTo(gomega.BeNil())
	})

	It("should survive concurrent acquire and release", func() {
		const holders = 32
		wg := &sync.WaitGroup{}
		for i := 0; i < holders; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer GinkgoRecover()
				s, err := newDeviceSource(dev)
				gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
				p := make([]byte, 16)
				gomega.Expect(s.read(p)).ShouldNot(gomega.HaveOccurred())
				s.close()
			}()
		}
		wg.Wait()
		gomega.Expect(dev.refs).To(gomega.Equal(0))
		gomega.Expect(dev.fh).To(gomega.BeNil())
	})
})
