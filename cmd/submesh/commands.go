package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/brep"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/codec"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/export"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/internal/compress"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/internal/resource"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/mesh"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/mesher"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/mesher/simple"
)

type loggerFunc func() (*mesh.Logger, error)

func newMeshCmd(newLogger loggerFunc) *cobra.Command {
	var (
		store       storeFlags
		paramsFile  string
		boxes       int
		maxSize     float64
		algorithm   string
		compression string
		codecName   string
		concurrency int
		bandwidth   int64
	)

	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "Mesh a row of unit boxes and export every submesh",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger, err := newLogger()
			if err != nil {
				return err
			}

			p := mesher.DefaultParams()
			if paramsFile != "" {
				if p, err = mesher.LoadParams(paramsFile); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("max-size") {
				p.MaxSize = maxSize
			}
			if cmd.Flags().Changed("algorithm") {
				p.Algorithm = mesher.Algorithm(algorithm)
			}
			kind, err := compress.ParseKind(compression)
			if err != nil {
				return err
			}
			c, err := codec.Lookup(codecName)
			if err != nil {
				return err
			}
			if boxes < 1 {
				return fmt.Errorf("--boxes must be at least 1")
			}

			b := brep.NewBuilder()
			origins := make([]mgl64.Vec3, boxes)
			for i := range origins {
				origins[i] = mgl64.Vec3{float64(i), 0, 0}
			}
			root := brep.Assembly(b, origins...)

			stats := &mesh.BasicMetricsCollector{}
			reg := mesh.New(mesh.WithLogger(logger), mesh.WithMetricsCollector(stats))
			if err := reg.SetRootShape(root); err != nil {
				return err
			}

			err = mesher.Run(ctx, simple.New(), reg, root, p,
				mesher.WithLogger(logger),
				mesher.WithLogInterval(500*time.Millisecond),
			)
			if err != nil {
				return err
			}

			bs, err := store.open(ctx)
			if err != nil {
				return err
			}
			m, err := export.Write(ctx, bs, reg,
				export.WithCodec(c),
				export.WithCompression(kind),
				export.WithConcurrency(concurrency),
				export.WithPrefix(store.exportPrefix()),
				export.WithLimits(resource.Limits{BytesPerSec: bandwidth}),
				export.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			nodes, cells := m.Totals()
			s := stats.GetStats()
			fmt.Fprintf(cmd.OutOrStdout(), "submeshes=%d nodes=%d cells=%d indexed=%d lookups=%d\n",
				len(m.SubMeshes), nodes, cells, s.IndexedShapes, s.LookupCount)
			return nil
		},
	}

	store.register(cmd)
	fl := cmd.Flags()
	fl.StringVar(&paramsFile, "params", "", "TOML file with meshing parameters")
	fl.IntVar(&boxes, "boxes", 2, "Number of unit boxes in the assembly")
	fl.Float64Var(&maxSize, "max-size", 1, "Target element size")
	fl.StringVar(&algorithm, "algorithm", string(mesher.Surface), "Meshing algorithm: linear|surface|volume")
	fl.StringVar(&compression, "compression", "lz4", "Blob compression: none|lz4|zstd")
	fl.StringVar(&codecName, "codec", export.DefaultCodec.Name(), "Element codec: "+strings.Join(codec.Names(), "|"))
	fl.IntVar(&concurrency, "concurrency", 4, "Blobs written at once")
	fl.Int64Var(&bandwidth, "bandwidth", 0, "Upload limit in bytes per second, 0 for none")
	return cmd
}

func newInspectCmd(newLogger loggerFunc) *cobra.Command {
	var store storeFlags
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the manifest of an export",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger, err := newLogger()
			if err != nil {
				return err
			}
			bs, err := store.open(ctx)
			if err != nil {
				return err
			}
			m, err := export.ReadManifest(ctx, bs,
				export.WithPrefix(store.exportPrefix()),
				export.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version=%d codec=%s compression=%s root=%s max_index=%d\n",
				m.Version, m.Codec, m.Compression, m.RootType, m.MaxShapeIndex)
			for _, e := range m.SubMeshes {
				fmt.Fprintf(out, "%6d %-8s children=%-3d nodes=%-5d cells=%-5d %s\n",
					e.Index, e.ShapeType, len(e.Children), e.Nodes, e.Cells, e.Blob)
			}
			return nil
		},
	}
	store.register(cmd)
	return cmd
}

func newVerifyCmd(newLogger loggerFunc) *cobra.Command {
	var store storeFlags
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Read every blob of an export and check its checksum",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger, err := newLogger()
			if err != nil {
				return err
			}
			bs, err := store.open(ctx)
			if err != nil {
				return err
			}
			m, sets, err := export.Read(ctx, bs,
				export.WithPrefix(store.exportPrefix()),
				export.WithLogger(logger),
			)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d submeshes, %d blobs\n", len(m.SubMeshes), len(sets))
			return nil
		},
	}
	store.register(cmd)
	return cmd
}
